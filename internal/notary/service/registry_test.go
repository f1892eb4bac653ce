package service_test

import (
	"context"
	"regexp"

	"starnotary/internal/notary/events"
	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

var txRefPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func (s *NotarySuite) TestStarExistsFalseBeforeCreation() {
	s.False(s.registry.StarExists(context.Background(), starOne.cent, starOne.dec, starOne.mag))
}

func (s *NotarySuite) TestCreateStarAndVerifyExistence() {
	ref, err := s.registry.CreateStar(context.Background(),
		starOne.name, starOne.story, starOne.cent, starOne.dec, starOne.mag, 1, alice)
	s.Require().NoError(err)
	s.Regexp(txRefPattern, string(ref))

	s.True(s.registry.StarExists(context.Background(), starOne.cent, starOne.dec, starOne.mag))

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(alice, owner)
}

func (s *NotarySuite) TestCreateStarRejectsDuplicateCoordinates() {
	s.createStarOne(1, alice)

	_, err := s.registry.CreateStar(context.Background(),
		"Other", "different story", starOne.cent, starOne.dec, starOne.mag, 2, bob)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	// state unchanged: token 2 never materialized
	_, err = s.ownership.OwnerOf(context.Background(), 2)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *NotarySuite) TestCreateStarRejectsDuplicateToken() {
	s.createStarOne(1, alice)

	_, err := s.registry.CreateStar(context.Background(),
		"Name02", "Story02", "032.1555", "121.8744", "245.9788", 1, carol)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	// fresh coordinates were not claimed by the failed create
	s.False(s.registry.StarExists(context.Background(), "032.1555", "121.8744", "245.9788"))
}

func (s *NotarySuite) TestMintAndOwnership() {
	_, err := s.registry.Mint(context.Background(), 1, alice)
	s.Require().NoError(err)

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(alice, owner)
}

func (s *NotarySuite) TestMintRejectsExistingTokenForAnyUser() {
	_, err := s.registry.Mint(context.Background(), 1, alice)
	s.Require().NoError(err)

	_, err = s.registry.Mint(context.Background(), 1, alice)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	_, err = s.registry.Mint(context.Background(), 1, bob)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	owner, err := s.ownership.OwnerOf(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal(alice, owner, "ownership unchanged after failed mints")
}

func (s *NotarySuite) TestStarInfoRendersPrefixedTuple() {
	s.createStarOne(1, alice)

	info := s.registry.StarInfo(context.Background(), 1)
	s.Equal(starOne.name, info.Name)
	s.Equal(starOne.story, info.Story)
	s.Equal("ra_"+starOne.cent, info.RA)
	s.Equal("dec_"+starOne.dec, info.Dec)
	s.Equal("mag_"+starOne.mag, info.Mag)
}

func (s *NotarySuite) TestStarInfoEmptyForUnknownToken() {
	info := s.registry.StarInfo(context.Background(), 3)
	s.Equal(models.Info{}, info)
}

func (s *NotarySuite) TestStarInfoEmptyForBareMintedToken() {
	_, err := s.registry.Mint(context.Background(), 5, alice)
	s.Require().NoError(err)
	s.Equal(models.Info{}, s.registry.StarInfo(context.Background(), 5))
}

func (s *NotarySuite) TestCreateStarEmitsCreationNotification() {
	s.createStarOne(9, alice)
	s.publisher.Close()

	recorded := s.sink.ByToken(9)
	s.Require().Len(recorded, 1)
	s.Equal(events.TypeStarCreated, recorded[0].Type)
	s.Equal(alice, recorded[0].Owner)
	s.Regexp(txRefPattern, recorded[0].TxRef)
}

func (s *NotarySuite) TestMintEmitsTransferFromZeroAddress() {
	_, err := s.registry.Mint(context.Background(), 4, bob)
	s.Require().NoError(err)
	s.publisher.Close()

	recorded := s.sink.ByToken(4)
	s.Require().Len(recorded, 1)
	s.Equal(events.TypeTransfer, recorded[0].Type)
	s.Equal(models.ZeroAddress, recorded[0].From)
	s.Equal(bob, recorded[0].To)
}

func (s *NotarySuite) TestCreateStarValidatesArguments() {
	_, err := s.registry.CreateStar(context.Background(),
		"n", "s", "1", "2", "3", 0, alice)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))

	_, err = s.registry.CreateStar(context.Background(),
		"n", "s", "1", "2", "3", 1, models.ZeroAddress)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}
