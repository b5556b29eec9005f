package routes

import (
	"time"

	"primeresidency-server/models"
	"primeresidency-server/services"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateSecurityInput struct {
	OwnerCode  string    `json:"ownerCode" validate:"required"`
	Name       string    `json:"name" validate:"required,max=256"`
	Phone      string    `json:"phone" validate:"required"`
	GuardCount int       `json:"guardCount" validate:"required,gte=1,lte=10"`
	StartDate  time.Time `json:"startDate" validate:"required"`
	EndDate    time.Time `json:"endDate" validate:"required"`
	Reason     string    `json:"reason"`
}

// CreateSecurity requests guards for a date range. There is no slot
// catalog; capacity is bounded only by the guard count.
func CreateSecurity(ctx iris.Context) {
	var input CreateSecurityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidOwnerCode(input.OwnerCode) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "ownerCode must match Ow followed by 4 digits", ctx)
		return
	}

	if !input.StartDate.Before(input.EndDate) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "startDate must be before endDate", ctx)
		return
	}

	security := models.Security{
		OwnerCode:  input.OwnerCode,
		Name:       input.Name,
		Phone:      input.Phone,
		GuardCount: input.GuardCount,
		StartDate:  services.Midnight(input.StartDate),
		EndDate:    services.Midnight(input.EndDate),
		Reason:     input.Reason,
		Status:     services.StatusConfirmed,
	}

	if err := storage.DB.Create(&security).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":  "Security request confirmed",
		"security": security,
	})
}

func GetOwnerSecurityRequests(ctx iris.Context) {
	ownerCode := ctx.Params().Get("ownerCode")

	var requests []models.Security
	res := storage.DB.Where("owner_code = ?", ownerCode).
		Order("start_date ASC").
		Find(&requests)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "requests": requests})
}

func AdminListSecurityRequests(ctx iris.Context) {
	var requests []models.Security
	if err := storage.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "requests": requests})
}

func CancelSecurity(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var security models.Security
	if err := storage.DB.First(&security, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Security request not found", ctx)
		return
	}

	cancelled, statusErr := services.Cancel(security.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Request is already cancelled.", ctx)
		return
	}

	security.Status = cancelled
	if err := storage.DB.Save(&security).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message":  "Security request cancelled",
		"security": security,
	})
}
