package routes

import (
	"time"

	"primeresidency-server/models"
	"primeresidency-server/services"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateCleaningInput struct {
	OwnerCode   string    `json:"ownerCode" validate:"required"`
	Name        string    `json:"name" validate:"required,max=256"`
	Phone       string    `json:"phone" validate:"required"`
	ServiceType string    `json:"serviceType" validate:"required,oneof=standard deep move_out"`
	StaffCount  int       `json:"staffCount" validate:"required,gte=1,lte=5"`
	Date        time.Time `json:"date" validate:"required"`
	Slot        string    `json:"slot" validate:"required"`
}

// CreateCleaning books a cleaning crew. The service queue is global, so a
// slot is claimed per date regardless of owner. Requests are confirmed
// immediately.
func CreateCleaning(ctx iris.Context) {
	var input CreateCleaningInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidOwnerCode(input.OwnerCode) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "ownerCode must match Ow followed by 4 digits", ctx)
		return
	}

	if !services.ValidSlot(services.ServiceSlots, input.Slot) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown time slot: "+input.Slot, ctx)
		return
	}

	date := services.Midnight(input.Date)

	taken, err := services.SlotTaken(storage.DB, &models.Cleaning{}, 0,
		"date = ? AND slot = ?", date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
		return
	}

	cleaning := models.Cleaning{
		OwnerCode:   input.OwnerCode,
		Name:        input.Name,
		Phone:       input.Phone,
		ServiceType: input.ServiceType,
		StaffCount:  input.StaffCount,
		Date:        date,
		Slot:        input.Slot,
		Status:      services.StatusConfirmed,
	}

	if createErr := storage.DB.Create(&cleaning).Error; createErr != nil {
		if services.IsUniqueViolation(createErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":  "Cleaning request confirmed",
		"cleaning": cleaning,
	})
}

func GetAvailableCleaningSlots(ctx iris.Context) {
	dateStr := ctx.URLParam("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "date must be YYYY-MM-DD", ctx)
		return
	}

	taken, slotsErr := services.ActiveSlots(storage.DB, &models.Cleaning{},
		"date = ?", services.Midnight(date))
	if slotsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    services.Available(services.ServiceSlots, taken),
	})
}

func GetOwnerCleanings(ctx iris.Context) {
	ownerCode := ctx.Params().Get("ownerCode")

	var cleanings []models.Cleaning
	res := storage.DB.Where("owner_code = ?", ownerCode).
		Order("date ASC, slot ASC").
		Find(&cleanings)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "cleanings": cleanings})
}

func AdminListCleanings(ctx iris.Context) {
	var cleanings []models.Cleaning
	if err := storage.DB.Order("created_at DESC").Find(&cleanings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "cleanings": cleanings})
}

type UpdateCleaningInput struct {
	ServiceType string    `json:"serviceType" validate:"required,oneof=standard deep move_out"`
	StaffCount  int       `json:"staffCount" validate:"required,gte=1,lte=5"`
	Date        time.Time `json:"date" validate:"required"`
	Slot        string    `json:"slot" validate:"required"`
}

func UpdateCleaning(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateCleaningInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidSlot(services.ServiceSlots, input.Slot) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown time slot: "+input.Slot, ctx)
		return
	}

	var cleaning models.Cleaning
	if err := storage.DB.First(&cleaning, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Cleaning request not found", ctx)
		return
	}

	if cleaning.Status == services.StatusCancelled {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Cancelled requests cannot be edited.", ctx)
		return
	}

	date := services.Midnight(input.Date)

	taken, err := services.SlotTaken(storage.DB, &models.Cleaning{}, cleaning.ID,
		"date = ? AND slot = ?", date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
		return
	}

	cleaning.ServiceType = input.ServiceType
	cleaning.StaffCount = input.StaffCount
	cleaning.Date = date
	cleaning.Slot = input.Slot

	if saveErr := storage.DB.Save(&cleaning).Error; saveErr != nil {
		if services.IsUniqueViolation(saveErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message":  "Cleaning request updated",
		"cleaning": cleaning,
	})
}

func CancelCleaning(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var cleaning models.Cleaning
	if err := storage.DB.First(&cleaning, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Cleaning request not found", ctx)
		return
	}

	cancelled, statusErr := services.Cancel(cleaning.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Request is already cancelled.", ctx)
		return
	}

	cleaning.Status = cancelled
	if err := storage.DB.Save(&cleaning).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message":  "Cleaning request cancelled",
		"cleaning": cleaning,
	})
}
