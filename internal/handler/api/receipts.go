package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stash-backend/internal/handler/dto/request"
	resdto "stash-backend/internal/handler/dto/response"
	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/usecase/commands"
)

type ReceiptHandler struct {
	cmds commands.ReceiptCommands
}

func NewReceiptHandler(cmds commands.ReceiptCommands) *ReceiptHandler {
	return &ReceiptHandler{cmds: cmds}
}

// @Summary Upload receipt image
// @Description Upload a receipt image to the simulated storage service
// @Tags receipts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt image (JPEG, PNG or WebP, max 10MB)"
// @Success 200 {object} resdto.UploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/receipts/upload [post]
func (h *ReceiptHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "A file field is required", nil)
		return
	}

	in := commands.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	result, err := h.cmds.UploadFile(c.Request.Context(), in, userOrAnonymous(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUploadResult(result))
}

// @Summary Process uploaded receipt
// @Description Run the simulated OCR extraction against an uploaded image
// @Tags receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessReceiptRequest true "Process request"
// @Success 200 {object} resdto.ProcessReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/receipts/process [post]
func (h *ReceiptHandler) Process(c *gin.Context) {
	var req reqdto.ProcessReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	receipt, err := h.cmds.ProcessReceipt(c.Request.Context(), req.ImageURL, userOrAnonymous(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessedReceipt(receipt))
}

// @Summary Scan receipt end to end
// @Description Upload and process a receipt in one call
// @Tags receipts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt image (JPEG, PNG or WebP, max 10MB)"
// @Success 200 {object} resdto.ProcessReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/receipts/scan [post]
func (h *ReceiptHandler) Scan(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "A file field is required", nil)
		return
	}

	in := commands.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	receipt, err := h.cmds.UploadAndProcess(c.Request.Context(), in, userOrAnonymous(c))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessedReceipt(receipt))
}
