package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/delivery"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	"github.com/x-xyz/marketgo/middleware"
)

type handler struct {
	asset   marketplace.AssetUseCase
	listing marketplace.ListingUseCase
	history marketplace.HistoryUseCase
}

func New(
	e *echo.Echo,
	asset marketplace.AssetUseCase,
	listing marketplace.ListingUseCase,
	history marketplace.HistoryUseCase) {
	h := &handler{asset, listing, history}

	g := e.Group("/assets/:chainId/:contract/:tokenId", middleware.IsValidAddress("contract"))

	g.GET("", h.getSaleState)

	g.GET("/listing", h.getListing)

	g.GET("/history", h.getHistory)
}

func (h *handler) getSaleState(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset, err := assetParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	view, err := h.asset.GetSaleState(ctx, asset)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset, err := assetParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	view, err := h.listing.GetCanonicalListing(ctx, asset)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) getHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset, err := assetParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	timeline, err := h.history.GetTimeline(ctx, asset)
	if err != nil && !errors.Is(err, domain.ErrEventQueryFailed) {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	// both event streams failing degrades to an empty timeline
	return delivery.MakeJsonResp(c, http.StatusOK, timeline)
}

func assetParam(c echo.Context) (domain.AssetId, error) {
	chainId, err := strconv.ParseInt(c.Param("chainId"), 10, 32)
	if err != nil {
		return domain.AssetId{}, domain.ErrInvalidChainId
	}
	tokenId := c.Param("tokenId")
	if tokenId == "" {
		return domain.AssetId{}, domain.ErrMissingField
	}
	// canonicalize so "042" matches token ids decoded from logs
	id, err := domain.TokenId(tokenId).ToBig()
	if err != nil {
		return domain.AssetId{}, domain.ErrBadParamInput
	}
	return domain.AssetId{
		ChainId:         domain.ChainId(chainId),
		ContractAddress: domain.Address(c.Param("contract")).ToLower(),
		TokenId:         domain.TokenId(id.String()),
	}, nil
}
