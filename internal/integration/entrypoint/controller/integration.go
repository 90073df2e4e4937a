package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/profitpulse/backend/internal/application/usecase/integration"
	domainerror "github.com/profitpulse/backend/internal/domain/error"
	"github.com/profitpulse/backend/internal/integration/entrypoint/dto"
	"github.com/profitpulse/backend/internal/integration/entrypoint/middleware"
)

// IntegrationController handles storefront and ad-platform integration endpoints.
type IntegrationController struct {
	connectShopifyUseCase    *integration.ConnectShopifyUseCase
	completeShopifyUseCase   *integration.CompleteShopifyUseCase
	listIntegrationsUseCase  *integration.ListIntegrationsUseCase
	toggleIntegrationUseCase *integration.ToggleIntegrationUseCase
	frontendURL              string
}

// NewIntegrationController creates a new integration controller instance.
func NewIntegrationController(
	connectShopifyUseCase *integration.ConnectShopifyUseCase,
	completeShopifyUseCase *integration.CompleteShopifyUseCase,
	listIntegrationsUseCase *integration.ListIntegrationsUseCase,
	toggleIntegrationUseCase *integration.ToggleIntegrationUseCase,
	frontendURL string,
) *IntegrationController {
	return &IntegrationController{
		connectShopifyUseCase:    connectShopifyUseCase,
		completeShopifyUseCase:   completeShopifyUseCase,
		listIntegrationsUseCase:  listIntegrationsUseCase,
		toggleIntegrationUseCase: toggleIntegrationUseCase,
		frontendURL:              frontendURL,
	}
}

// List handles GET /integrations requests.
func (c *IntegrationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := integration.ListIntegrationsInput{UserID: userID}

	output, err := c.listIntegrationsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIntegrationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIntegrationsResponse(output))
}

// ConnectShopify handles POST /integrations/shopify/connect requests.
// It returns the merchant-facing authorize URL for the OAuth handshake.
func (c *IntegrationController) ConnectShopify(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ConnectShopifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingShopDomain),
		})
		return
	}

	input := integration.ConnectShopifyInput{
		UserID:     userID,
		ShopDomain: req.Shop,
	}

	output, err := c.connectShopifyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIntegrationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ConnectShopifyResponse{
		AuthorizeURL: output.AuthorizeURL,
	})
}

// ShopifyCallback handles GET /integrations/shopify/callback requests.
//
// This is the unauthenticated redirect target of the Shopify handshake; the
// user is identified by redeeming the state token, not by a session header.
// The browser is sent back to the frontend either way.
func (c *IntegrationController) ShopifyCallback(ctx *gin.Context) {
	params := make(map[string]string)
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	input := integration.CompleteShopifyInput{
		Shop:   ctx.Query("shop"),
		Code:   ctx.Query("code"),
		State:  ctx.Query("state"),
		Params: params,
	}

	_, err := c.completeShopifyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		code := string(domainerror.ErrCodeInvalidOAuthState)
		var intErr *domainerror.IntegrationError
		if errors.As(err, &intErr) {
			code = string(intErr.Code)
		}
		ctx.Redirect(http.StatusFound, c.frontendURL+"/integrations?error="+url.QueryEscape(code))
		return
	}

	ctx.Redirect(http.StatusFound, c.frontendURL+"/integrations?connected=shopify")
}

// Toggle handles POST /integrations/toggle requests.
func (c *IntegrationController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ToggleIntegrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeUnknownProvider),
		})
		return
	}

	input := integration.ToggleIntegrationInput{
		UserID:   userID,
		Provider: req.Provider,
	}

	output, err := c.toggleIntegrationUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIntegrationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleIntegrationResponse{
		Provider:    string(output.Provider),
		IsConnected: output.IsConnected,
	})
}

// handleIntegrationError maps integration errors to HTTP responses.
func (c *IntegrationController) handleIntegrationError(ctx *gin.Context, err error) {
	var intErr *domainerror.IntegrationError
	if errors.As(err, &intErr) {
		status := http.StatusInternalServerError
		switch intErr.Code {
		case domainerror.ErrCodeMissingShopDomain,
			domainerror.ErrCodeUnknownProvider:
			status = http.StatusBadRequest
		case domainerror.ErrCodeInvalidOAuthState,
			domainerror.ErrCodeInvalidHMAC:
			status = http.StatusUnauthorized
		case domainerror.ErrCodeIntegrationNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: intErr.Message,
			Code:  string(intErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
