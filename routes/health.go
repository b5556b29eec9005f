package routes

import (
	"time"

	"primeresidency-server/models"
	"primeresidency-server/services"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateHealthInput struct {
	OwnerCode   string    `json:"ownerCode" validate:"required"`
	PatientName string    `json:"patientName" validate:"required,max=256"`
	Phone       string    `json:"phone" validate:"required"`
	ServiceType string    `json:"serviceType" validate:"required,oneof=consultation nursing physio"`
	Date        time.Time `json:"date" validate:"required"`
	Slot        string    `json:"slot" validate:"required"`
}

// CreateHealth books an in-residence medical appointment, confirmed
// immediately.
func CreateHealth(ctx iris.Context) {
	var input CreateHealthInput
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

	taken, err := services.SlotTaken(storage.DB, &models.Health{}, 0,
		"date = ? AND slot = ?", date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
		return
	}

	health := models.Health{
		OwnerCode:   input.OwnerCode,
		PatientName: input.PatientName,
		Phone:       input.Phone,
		ServiceType: input.ServiceType,
		Date:        date,
		Slot:        input.Slot,
		Status:      services.StatusConfirmed,
	}

	if createErr := storage.DB.Create(&health).Error; createErr != nil {
		if services.IsUniqueViolation(createErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Health appointment confirmed",
		"health":  health,
	})
}

// GetAvailableHealthSlots lists open appointment slots for a date. When the
// date is today, slots whose hour has already passed are dropped.
func GetAvailableHealthSlots(ctx iris.Context) {
	dateStr := ctx.URLParam("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "date must be YYYY-MM-DD", ctx)
		return
	}

	catalog := services.FilterPastSlots(services.ServiceSlots, date, services.NowFunc())

	taken, slotsErr := services.ActiveSlots(storage.DB, &models.Health{},
		"date = ?", services.Midnight(date))
	if slotsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    services.Available(catalog, taken),
	})
}

func GetOwnerHealthAppointments(ctx iris.Context) {
	ownerCode := ctx.Params().Get("ownerCode")

	var appointments []models.Health
	res := storage.DB.Where("owner_code = ?", ownerCode).
		Order("date ASC, slot ASC").
		Find(&appointments)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "appointments": appointments})
}

func AdminListHealthAppointments(ctx iris.Context) {
	var appointments []models.Health
	if err := storage.DB.Order("created_at DESC").Find(&appointments).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "appointments": appointments})
}

type UpdateHealthInput struct {
	ServiceType string    `json:"serviceType" validate:"required,oneof=consultation nursing physio"`
	Date        time.Time `json:"date" validate:"required"`
	Slot        string    `json:"slot" validate:"required"`
}

func UpdateHealth(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateHealthInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidSlot(services.ServiceSlots, input.Slot) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown time slot: "+input.Slot, ctx)
		return
	}

	var health models.Health
	if err := storage.DB.First(&health, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Appointment not found", ctx)
		return
	}

	if health.Status == services.StatusCancelled {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Cancelled appointments cannot be edited.", ctx)
		return
	}

	date := services.Midnight(input.Date)

	taken, err := services.SlotTaken(storage.DB, &models.Health{}, health.ID,
		"date = ? AND slot = ?", date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
		return
	}

	health.ServiceType = input.ServiceType
	health.Date = date
	health.Slot = input.Slot

	if saveErr := storage.DB.Save(&health).Error; saveErr != nil {
		if services.IsUniqueViolation(saveErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already taken.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Appointment updated",
		"health":  health,
	})
}

// CancelHealth rejects cancelling past appointments; the visit already
// happened.
func CancelHealth(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var health models.Health
	if err := storage.DB.First(&health, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Appointment not found", ctx)
		return
	}

	cancelled, statusErr := services.Cancel(health.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Appointment is already cancelled.", ctx)
		return
	}

	if health.Date.Before(services.Midnight(services.NowFunc())) {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Past appointments cannot be cancelled.", ctx)
		return
	}

	health.Status = cancelled
	if err := storage.DB.Save(&health).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Appointment cancelled",
		"health":  health,
	})
}
