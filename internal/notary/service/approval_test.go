package service_test

import (
	"context"

	"starnotary/internal/notary/events"
	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

func (s *NotarySuite) TestApproveUnknownTokenIsNotFound() {
	_, err := s.approval.Approve(context.Background(), bob, 2, alice)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *NotarySuite) TestApproveOwnerIsInvalid() {
	s.mint(1, alice)

	_, err := s.approval.Approve(context.Background(), alice, 1, alice)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *NotarySuite) TestApproveByNonOwnerIsUnauthorized() {
	s.mint(1, alice)

	_, err := s.approval.Approve(context.Background(), carol, 1, bob)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestReapproveReplacesDelegate() {
	s.mint(1, alice)

	_, err := s.approval.Approve(context.Background(), bob, 1, alice)
	s.Require().NoError(err)
	s.Equal(bob, s.approval.Approved(context.Background(), 1))

	_, err = s.approval.Approve(context.Background(), carol, 1, alice)
	s.Require().NoError(err)
	s.Equal(carol, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestApproveEmitsNotification() {
	s.mint(1, alice)

	_, err := s.approval.Approve(context.Background(), bob, 1, alice)
	s.Require().NoError(err)
	s.publisher.Close()

	var approvals []events.Event
	for _, e := range s.sink.ByToken(1) {
		if e.Type == events.TypeApproval {
			approvals = append(approvals, e)
		}
	}
	s.Require().Len(approvals, 1)
	s.Equal(alice, approvals[0].Owner)
	s.Equal(bob, approvals[0].To)
}

func (s *NotarySuite) TestApprovedDefaultsToZeroAddress() {
	s.mint(1, alice)
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 1))
	// unknown token is a lookup miss, not a failure
	s.Equal(models.ZeroAddress, s.approval.Approved(context.Background(), 99))
}

func (s *NotarySuite) TestIsApprovedForAllDefaultsFalse() {
	s.False(s.approval.IsApprovedForAll(context.Background(), alice, operator))
}

func (s *NotarySuite) TestSetApprovalForAllScopesToOwnerAndOperator() {
	_, err := s.approval.SetApprovalForAll(context.Background(), operator, true, alice)
	s.Require().NoError(err)

	s.True(s.approval.IsApprovedForAll(context.Background(), alice, operator))
	s.False(s.approval.IsApprovedForAll(context.Background(), bob, operator))
	s.False(s.approval.IsApprovedForAll(context.Background(), alice, carol))
}

func (s *NotarySuite) TestOwnerCanSetMultipleOperators() {
	for _, op := range []models.Address{operator, carol} {
		_, err := s.approval.SetApprovalForAll(context.Background(), op, true, alice)
		s.Require().NoError(err)
	}
	s.True(s.approval.IsApprovedForAll(context.Background(), alice, operator))
	s.True(s.approval.IsApprovedForAll(context.Background(), alice, carol))
}

func (s *NotarySuite) TestOperatorApprovalSurvivesTransfer() {
	s.mint(1, alice)
	s.mint(2, alice)

	_, err := s.approval.SetApprovalForAll(context.Background(), operator, true, alice)
	s.Require().NoError(err)

	_, err = s.ownership.Transfer(context.Background(), alice, bob, 2, alice)
	s.Require().NoError(err)

	s.True(s.approval.IsApprovedForAll(context.Background(), alice, operator),
		"operator approval must not be cleared by an unrelated transfer")
}

func (s *NotarySuite) TestOperatorCanApproveOnOwnersBehalf() {
	s.mint(1, alice)

	_, err := s.approval.SetApprovalForAll(context.Background(), operator, true, alice)
	s.Require().NoError(err)

	_, err = s.approval.Approve(context.Background(), bob, 1, operator)
	s.Require().NoError(err)
	s.Equal(bob, s.approval.Approved(context.Background(), 1))
}

func (s *NotarySuite) TestRevokeOperator() {
	_, err := s.approval.SetApprovalForAll(context.Background(), operator, true, alice)
	s.Require().NoError(err)
	_, err = s.approval.SetApprovalForAll(context.Background(), operator, false, alice)
	s.Require().NoError(err)

	s.False(s.approval.IsApprovedForAll(context.Background(), alice, operator))
}
