package http

import (
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
	trade marketplace.TradeUseCase
}

func New(e *echo.Echo, trade marketplace.TradeUseCase) {
	h := &handler{trade}

	e.POST("/auctions", h.createAuction)

	g := e.Group("/assets/:chainId/:contract/:tokenId", middleware.IsValidAddress("contract"))

	g.POST("/buy", h.buy)

	g.POST("/bid", h.bid)
}

type buyPayload struct {
	Buyer domain.Address `json:"buyer"`
}

type bidPayload struct {
	Bidder domain.Address `json:"bidder"`
	Amount string         `json:"amount"`
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &marketplace.CreateAuctionRequest{}
	if err := c.Bind(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.trade.CreateAuction(ctx, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return tradeResp(c, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset, err := assetParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := &buyPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.trade.Buy(ctx, asset, p.Buyer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return tradeResp(c, res)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	asset, err := assetParam(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := &bidPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.trade.BidOrOffer(ctx, asset, p.Bidder, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return tradeResp(c, res)
}

// tradeResp renders a terminal trade report. A failed trade is a handled
// outcome, reported with the stage it failed in.
func tradeResp(c echo.Context, res *marketplace.TradeResult) error {
	if res.Status == marketplace.TradeStatusFailed {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, res)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
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
