package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vigiehq/vigie-backend/dto"
	"github.com/vigiehq/vigie-backend/usecases"
)

func handleScreen(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ScreeningRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentBindError(c, err)
			return
		}

		request, err := dto.AdaptScreeningRequest(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewScreeningUsecase()
		result, err := usecase.Screen(ctx, request)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptScreeningResultDto(result))
	}
}

func handleScreenBatch(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.BatchScreeningRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentBindError(c, err)
			return
		}

		batch, err := dto.AdaptBatchScreeningRequest(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewScreeningUsecase()
		results, err := usecase.ScreenBatch(ctx, batch)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptBatchScreeningResultDto(results))
	}
}
