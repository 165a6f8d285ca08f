package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// respondError traduz o erro para o status da taxonomia; erros internos são registrados
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("erro ao processar requisição",
			"path", ctx.FullPath(), "organization_id", tenant.OrganizationID(ctx), "error", err)
	}
	_ = ctx.Error(err)
	ctx.JSON(status, dto.NewErrorResponse(apperror.PublicMessage(err)))
}

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("dados inválidos: "+err.Error()))
}

// respondCollection responde 204 quando não há itens
func respondCollection[T any](ctx *gin.Context, message string, items []T) {
	if len(items) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, items))
}
