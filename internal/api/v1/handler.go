package v1

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hngvu/payfastacy/internal/constants"
	"github.com/hngvu/payfastacy/internal/service"
	"github.com/hngvu/payfastacy/pkg/bankgateway"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	service  service.PaymentService
	gateway  bankgateway.BankGateway
	validate *validator.Validate
}

func NewHandler(logger *zap.Logger, svc service.PaymentService, gateway bankgateway.BankGateway,
	validate *validator.Validate) *Handler {
	return &Handler{logger: logger, service: svc, gateway: gateway, validate: validate}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreatePaymentRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err), zap.String("body", string(c.Body())))
		return badRequest(c)
	}

	if err := h.validate.Struct(request); err != nil {
		return unprocessable(c, err)
	}

	cmd := service.CreatePaymentCommand{Amount: request.Amount, Ref: request.Ref}

	resp, err := h.service.CreatePayment(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Success: true, Data: resp})
}

// Callback is reachable without the API key: the bank cannot present one.
// That makes this route the weakest point of the trust boundary, which is
// why the raw request metadata is persisted for audit.
func (h *Handler) Callback(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CallbackRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse callback body", zap.Error(err), zap.String("body", string(c.Body())))
		return badRequest(c)
	}

	if err := h.validate.Struct(request); err != nil {
		return unprocessable(c, err)
	}

	cmd := service.ProcessCallbackCommand{
		Content:       request.Content,
		Amount:        request.TransferAmount,
		ReferenceCode: request.ReferenceCode,
		Meta: service.WebhookMeta{
			SourceIP:  c.IP(),
			Origin:    c.Get(fiber.HeaderOrigin),
			UserAgent: c.Get(fiber.HeaderUserAgent),
			RawBody:   string(c.Body()),
		},
	}

	resp, err := h.service.ProcessCallback(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Data: resp})
}

func (h *Handler) SearchPayments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SearchPaymentsRequest
	if err := c.QueryParser(&request); err != nil {
		h.logger.Warn("Failed to parse search query", zap.Error(err))
		return badRequest(c)
	}

	if err := h.validate.Struct(request); err != nil {
		return unprocessable(c, err)
	}

	query := service.SearchPaymentsQuery{
		Ref:     request.Ref,
		Content: request.Content,
		Status:  request.Status,
		From:    request.From,
		To:      request.To,
	}

	resp, err := h.service.SearchPayments(ctx, query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Data: resp})
}

// GetTransaction is a pass-through to the gateway's transaction lookup; a
// non-2xx upstream response is forwarded with the upstream status.
func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	transactionID := c.Params("id")

	resp, err := h.gateway.GetTransaction(ctx, transactionID)
	if err != nil {
		var apiErr *bankgateway.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn("Gateway lookup failed",
				zap.Int("upstreamStatus", apiErr.StatusCode),
				zap.String("transactionID", transactionID))
			return c.Status(apiErr.StatusCode).JSON(FailureResponse{
				Success: false,
				Code:    constants.ErrCodeUpstreamError,
				Message: constants.GetErrorMessage(constants.ErrCodeUpstreamError),
			})
		}

		if errors.Is(err, bankgateway.ErrMalformedResponse) {
			h.logger.Warn("Gateway returned malformed payload", zap.String("transactionID", transactionID))
			return c.Status(fiber.StatusBadRequest).JSON(FailureResponse{
				Success: false,
				Code:    constants.ErrCodeUpstreamError,
				Message: constants.GetErrorMessage(constants.ErrCodeUpstreamError),
			})
		}

		h.logger.Error("Gateway lookup error", zap.Error(err), zap.String("transactionID", transactionID))
		return c.Status(fiber.StatusBadGateway).JSON(FailureResponse{
			Success: false,
			Code:    constants.ErrCodeUpstreamError,
			Message: constants.GetErrorMessage(constants.ErrCodeUpstreamError),
		})
	}

	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Data: resp.Data})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(FailureResponse{
		Success: false,
		Code:    constants.ErrCodeInvalidRequestBody,
		Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}

func unprocessable(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(FailureResponse{
		Success: false,
		Code:    constants.ErrCodeValidationFailed,
		Message: err.Error(),
	})
}
