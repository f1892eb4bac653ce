package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"starnotary/internal/ledger"
	"starnotary/internal/notary/handler/mocks"
	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

// HandlerErrorSuite drives the handlers against mocked services to reach
// the failure paths the end-to-end tests cannot, like ledger outages.
type HandlerErrorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	registry  *mocks.MockRegistryService
	ownership *mocks.MockOwnershipService
	approval  *mocks.MockApprovalService
	market    *mocks.MockMarketService
	router    http.Handler
}

func TestHandlerErrorSuite(t *testing.T) {
	suite.Run(t, new(HandlerErrorSuite))
}

func (s *HandlerErrorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = mocks.NewMockRegistryService(s.ctrl)
	s.ownership = mocks.NewMockOwnershipService(s.ctrl)
	s.approval = mocks.NewMockApprovalService(s.ctrl)
	s.market = mocks.NewMockMarketService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(s.registry, s.ownership, s.approval, s.market, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerErrorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerErrorSuite) TestOwnerLookupFailureIs500() {
	s.ownership.EXPECT().
		OwnerOf(gomock.Any(), models.TokenID(7)).
		Return(models.Address(""), dErrors.New(dErrors.CodeInternal, "store unreachable"))

	rec := s.do(http.MethodGet, "/star/ownerof/7", nil)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("internal_error", body["error"])
	s.NotContains(body, "error_description", "internal detail must not leak")
}

func (s *HandlerErrorSuite) TestMintLedgerOutageIs500WithoutDetail() {
	s.registry.EXPECT().
		Mint(gomock.Any(), models.TokenID(7), models.Address("0xaaa1")).
		Return(ledger.TxRef(""), dErrors.Wrap(io.ErrUnexpectedEOF, dErrors.CodeInternal, "ledger write failed"))

	rec := s.do(http.MethodPost, "/star/mint", map[string]any{"token": 7, "owner": "0xaaa1"})
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("internal_error", body["error"])
	s.NotContains(rec.Body.String(), "ledger write failed")
}

func (s *HandlerErrorSuite) TestIndeterminateSubmissionIs400() {
	s.market.EXPECT().
		Buy(gomock.Any(), models.TokenID(7), models.Address("0xccc3"), gomock.Any()).
		Return(ledger.TxRef(""), dErrors.New(dErrors.CodeUnavailable, "confirmation timed out; the submission may still commit"))

	rec := s.do(http.MethodPatch, "/star/buyStar", map[string]any{"token": 7, "buyer": "0xccc3", "value": 100})
	s.Equal(http.StatusBadRequest, rec.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("unavailable", body["error"])
	s.Contains(body["error_description"], "may still commit")
}

func (s *HandlerErrorSuite) TestHandlersNormalizeAddresses() {
	s.ownership.EXPECT().
		Transfer(gomock.Any(), models.Address("0xaaa1"), models.Address("0xbbb2"), models.TokenID(7), models.Address("0xaaa1")).
		Return(ledger.TxRef("0xabc"), nil)

	rec := s.do(http.MethodPatch, "/star/safeTransferFrom", map[string]any{
		"from": "  0xAAA1", "to": "0xBBB2 ", "token": 7, "owner": "0xAaa1",
	})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerErrorSuite) do(method, path string, payload any) *httptest.ResponseRecorder {
	s.T().Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
