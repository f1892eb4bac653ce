package service_test

import (
	"context"

	"github.com/holiman/uint256"

	"starnotary/internal/notary/events"
	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

func (s *NotarySuite) TestPutUpForSaleByOwner() {
	s.createStarOne(1, bob)

	_, err := s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(100), bob)
	s.Require().NoError(err)
	s.Equal(uint64(100), s.market.SalePrice(context.Background(), 1).Uint64())
}

func (s *NotarySuite) TestPutUpForSaleRejectsOperator() {
	s.createStarOne(1, bob)
	_, err := s.approval.SetApprovalForAll(context.Background(), carol, true, bob)
	s.Require().NoError(err)

	_, err = s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(100), carol)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.True(s.market.SalePrice(context.Background(), 1).IsZero())
}

func (s *NotarySuite) TestPutUpForSaleRejectsDelegate() {
	s.createStarOne(1, bob)
	_, err := s.approval.Approve(context.Background(), carol, 1, bob)
	s.Require().NoError(err)

	_, err = s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(100), carol)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *NotarySuite) TestPutUpForSaleRejectsStranger() {
	s.createStarOne(1, bob)

	_, err := s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(100), carol)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *NotarySuite) TestPutUpForSaleUnknownTokenIsNotFound() {
	_, err := s.market.PutUpForSale(context.Background(), 9, uint256.NewInt(100), bob)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *NotarySuite) TestSalePriceZeroWhenUnlistedOrUnknown() {
	s.createStarOne(1, bob)
	s.True(s.market.SalePrice(context.Background(), 1).IsZero())
	s.True(s.market.SalePrice(context.Background(), 2).IsZero())
}

func (s *NotarySuite) TestZeroPriceDelists() {
	s.createStarOne(1, bob)
	_, err := s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(100), bob)
	s.Require().NoError(err)

	_, err = s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(0), bob)
	s.Require().NoError(err)
	s.True(s.market.SalePrice(context.Background(), 1).IsZero())

	_, err = s.market.Buy(context.Background(), 1, carol, uint256.NewInt(100))
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *NotarySuite) TestBuyUnlistedStarIsUnavailable() {
	s.createStarOne(1, bob)

	_, err := s.market.Buy(context.Background(), 1, carol, uint256.NewInt(100))
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *NotarySuite) TestBuyUnknownTokenIsUnavailable() {
	// absent listing and absent token are indistinguishable on the buy path
	_, err := s.market.Buy(context.Background(), 2, carol, uint256.NewInt(100))
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *NotarySuite) TestBuyBelowPriceIsInsufficientPayment() {
	s.listStarOne(100)

	_, err := s.market.Buy(context.Background(), 1, carol, uint256.NewInt(50))
	s.True(dErrors.HasCode(err, dErrors.CodeInsufficientPayment))

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(bob, owner, "ownership unchanged after failed purchase")
	s.Equal(uint64(100), s.market.SalePrice(context.Background(), 1).Uint64(),
		"listing unchanged after failed purchase")
}

func (s *NotarySuite) TestBuyAtExactPrice() {
	s.listStarOne(100)

	_, err := s.market.Buy(context.Background(), 1, carol, uint256.NewInt(100))
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(carol, owner)
	s.True(s.market.SalePrice(context.Background(), 1).IsZero(), "listing removed on purchase")
	s.Equal(uint64(100), s.market.Proceeds(context.Background(), bob).Uint64())
	s.True(s.market.Proceeds(context.Background(), carol).IsZero(), "no refund at exact price")
}

func (s *NotarySuite) TestBuyWithOverpaymentRefundsSurplus() {
	s.listStarOne(100)

	_, err := s.market.Buy(context.Background(), 1, carol, uint256.NewInt(150))
	s.Require().NoError(err)

	s.Equal(uint64(100), s.market.Proceeds(context.Background(), bob).Uint64(),
		"seller credited exactly the listed price")
	s.Equal(uint64(50), s.market.Proceeds(context.Background(), carol).Uint64(),
		"buyer refunded the surplus")
}

func (s *NotarySuite) TestBuyClearsDelegateApproval() {
	s.listStarOne(100)
	_, err := s.approval.Approve(context.Background(), operator, 1, bob)
	s.Require().NoError(err)

	_, err = s.market.Buy(context.Background(), 1, carol, uint256.NewInt(100))
	s.Require().NoError(err)

	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestBuyEmitsSaleNotification() {
	s.listStarOne(100)

	_, err := s.market.Buy(context.Background(), 1, carol, uint256.NewInt(150))
	s.Require().NoError(err)
	s.publisher.Close()

	var sold []events.Event
	for _, e := range s.sink.ByToken(1) {
		if e.Type == events.TypeStarSold {
			sold = append(sold, e)
		}
	}
	s.Require().Len(sold, 1)
	s.Equal(bob, sold[0].From)
	s.Equal(carol, sold[0].To)
	s.Equal("100", sold[0].Price)
	s.Equal("150", sold[0].Value)
}

func (s *NotarySuite) TestWeiScalePricesRoundTrip() {
	s.createStarOne(1, bob)

	// 0.45 ether in wei exceeds 32-bit arithmetic comfortably
	price, err := uint256.FromDecimal("450000000000000000")
	s.Require().NoError(err)

	_, err = s.market.PutUpForSale(context.Background(), 1, price, bob)
	s.Require().NoError(err)
	s.Equal("450000000000000000", s.market.SalePrice(context.Background(), 1).Dec())
}

func (s *NotarySuite) listStarOne(price uint64) {
	s.T().Helper()
	s.createStarOne(1, bob)
	_, err := s.market.PutUpForSale(context.Background(), 1, uint256.NewInt(price), bob)
	s.Require().NoError(err)
}
