// Package handler exposes the notary registry over HTTP. Routes mirror the
// client contract of the original notary app: mutations answer 200 with the
// ledger transaction reference, reads answer with small JSON objects.
package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks RegistryService,OwnershipService,ApprovalService,MarketService

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"

	"starnotary/internal/ledger"
	"starnotary/internal/notary/models"
	"starnotary/internal/platform/middleware"
	dErrors "starnotary/pkg/domain-errors"
	"starnotary/pkg/platform/httputil"
)

// RegistryService covers star creation and lookup.
type RegistryService interface {
	CreateStar(ctx context.Context, name, story, cent, dec, mag string, token models.TokenID, owner models.Address) (ledger.TxRef, error)
	Mint(ctx context.Context, token models.TokenID, owner models.Address) (ledger.TxRef, error)
	StarExists(ctx context.Context, cent, dec, mag string) bool
	StarInfo(ctx context.Context, token models.TokenID) models.Info
}

// OwnershipService covers owner lookup and transfers.
type OwnershipService interface {
	OwnerOf(ctx context.Context, token models.TokenID) (models.Address, error)
	Transfer(ctx context.Context, from, to models.Address, token models.TokenID, caller models.Address) (ledger.TxRef, error)
}

// ApprovalService covers delegate and operator approvals.
type ApprovalService interface {
	Approve(ctx context.Context, to models.Address, token models.TokenID, caller models.Address) (ledger.TxRef, error)
	Approved(ctx context.Context, token models.TokenID) models.Address
	SetApprovalForAll(ctx context.Context, operator models.Address, approved bool, owner models.Address) (ledger.TxRef, error)
	IsApprovedForAll(ctx context.Context, owner, operator models.Address) bool
}

// MarketService covers listings and purchases.
type MarketService interface {
	PutUpForSale(ctx context.Context, token models.TokenID, price *uint256.Int, caller models.Address) (ledger.TxRef, error)
	SalePrice(ctx context.Context, token models.TokenID) *uint256.Int
	Buy(ctx context.Context, token models.TokenID, buyer models.Address, value *uint256.Int) (ledger.TxRef, error)
}

// Handler handles star registry endpoints.
type Handler struct {
	logger       *slog.Logger
	registry     RegistryService
	ownership    OwnershipService
	approval     ApprovalService
	market       MarketService
	jwtValidator middleware.JWTValidator
}

// New creates a new star Handler. A nil jwtValidator leaves mutating routes
// open, which is the development default.
func New(
	registry RegistryService,
	ownership OwnershipService,
	approval ApprovalService,
	market MarketService,
	logger *slog.Logger,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		registry:     registry,
		ownership:    ownership,
		approval:     approval,
		market:       market,
		jwtValidator: jwtValidator,
	}
}

// Register registers the star routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	starRouter := chi.NewRouter()
	starRouter.Use(middleware.Recovery(h.logger))
	starRouter.Use(middleware.RequestID)
	starRouter.Use(middleware.Logger(h.logger))

	starRouter.Get("/star/checkIfStarExist", h.handleCheckIfStarExist)
	starRouter.Get("/star/isApprovedForAll", h.handleIsApprovedForAll)
	starRouter.Get("/star/ownerof/{token}", h.handleOwnerOf)
	starRouter.Get("/star/getApproved/{token}", h.handleGetApproved)
	starRouter.Get("/star/starsForSale/{token}", h.handleStarsForSale)
	starRouter.Get("/star/{token}", h.handleStarInfo)

	starRouter.Group(func(mut chi.Router) {
		if h.jwtValidator != nil {
			mut.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		}
		mut.Post("/star", h.handleCreateStar)
		mut.Post("/star/mint", h.handleMint)
		mut.Patch("/star/approve", h.handleApprove)
		mut.Patch("/star/setApprovalForAll", h.handleSetApprovalForAll)
		mut.Patch("/star/putStarUpForSale", h.handlePutStarUpForSale)
		mut.Patch("/star/buyStar", h.handleBuyStar)
		mut.Patch("/star/safeTransferFrom", h.handleSafeTransferFrom)
	})

	r.Mount("/", starRouter)
}

func (h *Handler) handleStarInfo(w http.ResponseWriter, r *http.Request) {
	token, err := tokenParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	info := h.registry.StarInfo(r.Context(), token)
	if info == (models.Info{}) {
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeNotFound, "token %d has no star info", token))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleOwnerOf(w http.ResponseWriter, r *http.Request) {
	token, err := tokenParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	owner, err := h.ownership.OwnerOf(r.Context(), token)
	if err != nil {
		h.logLookupFailure(r, "owner lookup failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]models.Address{"owner": owner})
}

func (h *Handler) handleCheckIfStarExist(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exists := h.registry.StarExists(r.Context(), q.Get("cent"), q.Get("dec"), q.Get("mag"))
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *Handler) handleIsApprovedForAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	owner := models.NormalizeAddress(q.Get("owner"))
	operator := models.NormalizeAddress(q.Get("operator"))
	if owner == "" || operator == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "owner and operator query parameters are required"))
		return
	}

	approved := h.approval.IsApprovedForAll(r.Context(), owner, operator)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"approved": approved})
}

func (h *Handler) handleGetApproved(w http.ResponseWriter, r *http.Request) {
	token, err := tokenParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	delegate := h.approval.Approved(r.Context(), token)
	httputil.WriteJSON(w, http.StatusOK, map[string]models.Address{"approved": delegate})
}

func (h *Handler) handleStarsForSale(w http.ResponseWriter, r *http.Request) {
	token, err := tokenParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	price := h.market.SalePrice(r.Context(), token)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"price": price.Dec()})
}

func (h *Handler) handleCreateStar(w http.ResponseWriter, r *http.Request) {
	var req createStarRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.registry.CreateStar(r.Context(), req.Name, req.Story, req.Cent, req.Dec, req.Mag,
		req.Token, models.NormalizeAddress(req.Owner))
	if err != nil {
		h.writeMutationError(w, r, "create star failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.registry.Mint(r.Context(), req.Token, models.NormalizeAddress(req.Owner))
	if err != nil {
		h.writeMutationError(w, r, "mint failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.approval.Approve(r.Context(), models.NormalizeAddress(req.To), req.Token,
		models.NormalizeAddress(req.Owner))
	if err != nil {
		h.writeMutationError(w, r, "approve failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handleSetApprovalForAll(w http.ResponseWriter, r *http.Request) {
	var req setApprovalForAllRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.approval.SetApprovalForAll(r.Context(), models.NormalizeAddress(req.To), req.Approved,
		models.NormalizeAddress(req.Owner))
	if err != nil {
		h.writeMutationError(w, r, "set operator approval failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handlePutStarUpForSale(w http.ResponseWriter, r *http.Request) {
	var req putStarUpForSaleRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	price, err := parseAmount(req.Price, "price")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.market.PutUpForSale(r.Context(), req.Token, price, models.NormalizeAddress(req.Owner))
	if err != nil {
		h.writeMutationError(w, r, "put star up for sale failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handleBuyStar(w http.ResponseWriter, r *http.Request) {
	var req buyStarRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	value, err := parseAmount(req.Value, "value")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.market.Buy(r.Context(), req.Token, models.NormalizeAddress(req.Buyer), value)
	if err != nil {
		h.writeMutationError(w, r, "buy star failed", err)
		return
	}
	writeTx(w, ref)
}

func (h *Handler) handleSafeTransferFrom(w http.ResponseWriter, r *http.Request) {
	var req safeTransferFromRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.ownership.Transfer(r.Context(), models.NormalizeAddress(req.From),
		models.NormalizeAddress(req.To), req.Token, models.NormalizeAddress(req.Owner))
	if err != nil {
		// The transfer route answers 400 for business failures, unlike the
		// approval routes which keep 403 for authorization misses.
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) || dErrors.HasCode(err, dErrors.CodeNotFound) {
			httputil.WriteErrorStatus(w, http.StatusBadRequest, err)
			return
		}
		h.writeMutationError(w, r, "transfer failed", err)
		return
	}
	writeTx(w, ref)
}

// writeMutationError logs unexpected failures and lets the shared mapping
// translate coded ones.
func (h *Handler) writeMutationError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), msg,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, msg))
		return
	}
	httputil.WriteError(w, err)
}

func (h *Handler) logLookupFailure(r *http.Request, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), msg,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
	}
}

func writeTx(w http.ResponseWriter, ref ledger.TxRef) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"tx": string(ref)})
}
