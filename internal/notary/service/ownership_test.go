package service_test

import (
	"context"

	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

func (s *NotarySuite) TestOwnerOfUnknownTokenIsNotFound() {
	_, err := s.ownership.OwnerOf(context.Background(), 42)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *NotarySuite) TestTransferUnknownTokenIsNotFound() {
	_, err := s.ownership.Transfer(context.Background(), alice, bob, 2, alice)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *NotarySuite) TestTransferByStrangerIsUnauthorized() {
	s.mint(1, alice)

	_, err := s.ownership.Transfer(context.Background(), alice, carol, 1, bob)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(alice, owner)
}

func (s *NotarySuite) TestTransferWithWrongFromIsUnauthorized() {
	s.mint(1, alice)

	_, err := s.ownership.Transfer(context.Background(), bob, carol, 1, bob)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *NotarySuite) TestOwnerCanTransferToSelf() {
	s.mint(1, alice)

	_, err := s.ownership.Transfer(context.Background(), alice, alice, 1, alice)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(alice, owner)
}

func (s *NotarySuite) TestSelfTransferStillClearsApproval() {
	s.mint(1, alice)
	_, err := s.approval.Approve(context.Background(), bob, 1, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, alice, 1, alice)
	s.Require().NoError(err)
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestOwnerCanTransferToAnother() {
	s.mint(1, alice)

	_, err := s.ownership.Transfer(context.Background(), alice, bob, 1, alice)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(bob, owner)
}

func (s *NotarySuite) TestTransferClearsDelegateApproval() {
	s.mint(1, alice)
	_, err := s.approval.Approve(context.Background(), bob, 1, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, bob, 1, alice)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(bob, owner)
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestDelegateCanTransferToThirdParty() {
	s.mint(1, alice)
	_, err := s.approval.Approve(context.Background(), bob, 1, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, carol, 1, bob)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(carol, owner)
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestOperatorCanTransfer() {
	s.mint(1, alice)
	_, err := s.approval.SetApprovalForAll(context.Background(), operator, true, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, bob, 1, operator)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(bob, owner)
}

// End to end: mint to A, A approves B, B moves the token from A to C.
func (s *NotarySuite) TestDelegatedTransferScenario() {
	s.mint(7, alice)

	_, err := s.approval.Approve(context.Background(), bob, 7, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, carol, 7, bob)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 7)
	s.Require().NoError(err)
	s.Equal(carol, owner)
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 7))
}

func (s *NotarySuite) mint(token models.TokenID, owner models.Address) {
	s.T().Helper()
	_, err := s.registry.Mint(context.Background(), token, owner)
	s.Require().NoError(err)
}
