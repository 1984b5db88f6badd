package service

import (
	"context"

	"github.com/lotecerto/lotecerto-api/internal/domain"
	"github.com/lotecerto/lotecerto-api/internal/repository"
)

type fakeAuctionRepo struct {
	auctions map[uint]domain.Auction
	nextID   uint

	deletedWithLots []uint
}

func newFakeAuctionRepo(auctions ...domain.Auction) *fakeAuctionRepo {
	repo := &fakeAuctionRepo{
		auctions: make(map[uint]domain.Auction),
		nextID:   1,
	}
	for _, a := range auctions {
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
		repo.auctions[a.ID] = a
	}

	return repo
}

func (f *fakeAuctionRepo) Create(_ context.Context, auction domain.Auction) (domain.Auction, error) {
	auction.ID = f.nextID
	f.nextID++
	f.auctions[auction.ID] = auction

	return auction, nil
}

func (f *fakeAuctionRepo) Update(_ context.Context, auction domain.Auction) (domain.Auction, error) {
	if _, ok := f.auctions[auction.ID]; !ok {
		return domain.Auction{}, repository.ErrAuctionNotFound
	}
	f.auctions[auction.ID] = auction

	return auction, nil
}

func (f *fakeAuctionRepo) FindByID(_ context.Context, id uint) (domain.Auction, error) {
	auction, ok := f.auctions[id]
	if !ok {
		return domain.Auction{}, repository.ErrAuctionNotFound
	}

	return auction, nil
}

func (f *fakeAuctionRepo) FindByUserID(_ context.Context, userID uint) ([]domain.Auction, error) {
	var out []domain.Auction
	for _, a := range f.auctions {
		if a.UserID == userID {
			out = append(out, a)
		}
	}

	return out, nil
}

func (f *fakeAuctionRepo) UpdateStatus(_ context.Context, id uint, status domain.AuctionStatus) error {
	auction, ok := f.auctions[id]
	if !ok {
		return repository.ErrAuctionNotFound
	}
	auction.Status = status
	f.auctions[id] = auction

	return nil
}

func (f *fakeAuctionRepo) DeleteWithLots(_ context.Context, id uint) error {
	if _, ok := f.auctions[id]; !ok {
		return repository.ErrAuctionNotFound
	}
	delete(f.auctions, id)
	f.deletedWithLots = append(f.deletedWithLots, id)

	return nil
}

type fakeLotRepo struct {
	lots   map[uint]domain.Lot
	nextID uint
}

func newFakeLotRepo(lots ...domain.Lot) *fakeLotRepo {
	repo := &fakeLotRepo{
		lots:   make(map[uint]domain.Lot),
		nextID: 1,
	}
	for _, l := range lots {
		if l.ID >= repo.nextID {
			repo.nextID = l.ID + 1
		}
		repo.lots[l.ID] = l
	}

	return repo
}

func (f *fakeLotRepo) Create(_ context.Context, lot domain.Lot) (domain.Lot, error) {
	lot.ID = f.nextID
	f.nextID++
	f.lots[lot.ID] = lot

	return lot, nil
}

func (f *fakeLotRepo) Update(_ context.Context, lot domain.Lot) (domain.Lot, error) {
	if _, ok := f.lots[lot.ID]; !ok {
		return domain.Lot{}, repository.ErrLotNotFound
	}
	f.lots[lot.ID] = lot

	return lot, nil
}

func (f *fakeLotRepo) FindByID(_ context.Context, id uint) (domain.Lot, error) {
	lot, ok := f.lots[id]
	if !ok {
		return domain.Lot{}, repository.ErrLotNotFound
	}

	return lot, nil
}

func (f *fakeLotRepo) FindByAuctionID(_ context.Context, auctionID uint) ([]domain.Lot, error) {
	var out []domain.Lot
	for _, l := range f.lots {
		if l.AuctionID == auctionID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (f *fakeLotRepo) FindPurchasedByUserID(_ context.Context, _ uint) ([]domain.Lot, error) {
	var out []domain.Lot
	for _, l := range f.lots {
		if l.Status == domain.LotPurchased {
			out = append(out, l)
		}
	}

	return out, nil
}

func (f *fakeLotRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.lots[id]; !ok {
		return repository.ErrLotNotFound
	}
	delete(f.lots, id)

	return nil
}
