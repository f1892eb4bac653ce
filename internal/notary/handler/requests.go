package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"

	"starnotary/internal/notary/models"
	dErrors "starnotary/pkg/domain-errors"
)

type createStarRequest struct {
	Name  string         `json:"name"`
	Story string         `json:"story"`
	Cent  string         `json:"cent"`
	Dec   string         `json:"dec"`
	Mag   string         `json:"mag"`
	Token models.TokenID `json:"token"`
	Owner string         `json:"owner"`
}

type mintRequest struct {
	Token models.TokenID `json:"token"`
	Owner string         `json:"owner"`
}

type approveRequest struct {
	To    string         `json:"to"`
	Token models.TokenID `json:"token"`
	Owner string         `json:"owner"`
}

type setApprovalForAllRequest struct {
	To       string `json:"to"`
	Approved bool   `json:"approved"`
	Owner    string `json:"owner"`
}

type putStarUpForSaleRequest struct {
	Token models.TokenID `json:"token"`
	Price json.Number    `json:"price"`
	Owner string         `json:"owner"`
}

type buyStarRequest struct {
	Token models.TokenID `json:"token"`
	Buyer string         `json:"buyer"`
	Value json.Number    `json:"value"`
}

type safeTransferFromRequest struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Token models.TokenID `json:"token"`
	Owner string         `json:"owner"`
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

func tokenParam(r *http.Request) (models.TokenID, error) {
	raw := chi.URLParam(r, "token")
	token, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid token %q", raw)
	}
	return models.TokenID(token), nil
}

// parseAmount accepts the JSON number as sent by clients; amounts are
// decimal strings internally because wei values overflow float64.
func parseAmount(n json.Number, field string) (*uint256.Int, error) {
	if n == "" {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "%s is required", field)
	}
	amount, err := uint256.FromDecimal(n.String())
	if err != nil {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "invalid %s %q", field, n.String())
	}
	return amount, nil
}
