package routes

import (
	"fmt"
	"time"

	"primeresidency-server/models"
	"primeresidency-server/services"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateBookingInput struct {
	ApartmentID uint      `json:"apartmentID" validate:"required"`
	Name        string    `json:"name" validate:"required,max=256"`
	Phone       string    `json:"phone" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Date        time.Time `json:"date" validate:"required"`
	Slot        string    `json:"slot" validate:"required"`
}

// CreateBooking registers an apartment visit. It starts out pending until
// an admin confirms it.
func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidSlot(services.BookingSlots, input.Slot) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown time slot: "+input.Slot, ctx)
		return
	}

	if !utils.ValidPhone(input.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number.", ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, input.ApartmentID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found", ctx)
		return
	}

	date := services.Midnight(input.Date)

	taken, err := services.SlotTaken(storage.DB, &models.Booking{}, 0,
		"apartment_id = ? AND date = ? AND slot = ?", input.ApartmentID, date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already booked.", ctx)
		return
	}

	booking := models.Booking{
		ApartmentID: input.ApartmentID,
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Date:        date,
		Slot:        input.Slot,
		Status:      services.StatusPending,
	}

	if createErr := storage.DB.Create(&booking).Error; createErr != nil {
		// The partial unique index catches a concurrent insert that
		// slipped past the pre-check.
		if services.IsUniqueViolation(createErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already booked.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var notification models.Notification
	notification.Title = "New Booking Request"
	notification.Message = fmt.Sprintf("New visit request for %s on %s at %s", apartment.Title, date.Format("Jan 2, 2006"), input.Slot)
	notification.Type = "booking_request"
	notification.RefID = booking.ID
	notification.RefType = "booking"
	storage.DB.Create(&notification)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Booking request submitted",
		"booking": booking,
	})
}

// GetAvailableBookingSlots computes the open visit slots for an apartment
// and date: the fixed catalog minus slots of active bookings.
func GetAvailableBookingSlots(ctx iris.Context) {
	apartmentID := ctx.URLParam("apartmentId")
	dateStr := ctx.URLParam("date")

	if apartmentID == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "apartmentId is required", ctx)
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "date must be YYYY-MM-DD", ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, apartmentID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found", ctx)
		return
	}

	taken, slotsErr := services.ActiveSlots(storage.DB, &models.Booking{},
		"apartment_id = ? AND date = ?", apartment.ID, services.Midnight(date))
	if slotsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    services.Available(services.BookingSlots, taken),
	})
}

// GetUserBookings lists a requester's bookings sorted by date then slot.
func GetUserBookings(ctx iris.Context) {
	email := ctx.Params().Get("email")

	var bookings []models.Booking
	res := storage.DB.Preload("Apartment").
		Where("email = ?", email).
		Order("date ASC, slot ASC").
		Find(&bookings)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "bookings": bookings})
}

// AdminListBookings returns every booking, most recent first, with the
// referenced apartment preloaded.
func AdminListBookings(ctx iris.Context) {
	var bookings []models.Booking
	res := storage.DB.Preload("Apartment").
		Order("created_at DESC").
		Find(&bookings)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "bookings": bookings})
}

type UpdateBookingInput struct {
	Name  string    `json:"name" validate:"required,max=256"`
	Phone string    `json:"phone" validate:"required"`
	Date  time.Time `json:"date" validate:"required"`
	Slot  string    `json:"slot" validate:"required"`
}

// UpdateBooking edits a non-cancelled booking. Any edit resets the status
// to pending so an admin has to re-approve it.
func UpdateBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidSlot(services.BookingSlots, input.Slot) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Unknown time slot: "+input.Slot, ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found", ctx)
		return
	}

	nextStatus, statusErr := services.Reschedule(booking.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Cancelled bookings cannot be edited.", ctx)
		return
	}

	date := services.Midnight(input.Date)

	taken, err := services.SlotTaken(storage.DB, &models.Booking{}, booking.ID,
		"apartment_id = ? AND date = ? AND slot = ?", booking.ApartmentID, date, input.Slot)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already booked.", ctx)
		return
	}

	booking.Name = input.Name
	booking.Phone = input.Phone
	booking.Date = date
	booking.Slot = input.Slot
	booking.Status = nextStatus // edits always land back on pending

	if saveErr := storage.DB.Save(&booking).Error; saveErr != nil {
		if services.IsUniqueViolation(saveErr) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "This slot is already booked.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Booking updated, pending re-approval",
		"booking": booking,
	})
}

// CancelBooking moves a booking to cancelled. Cancelled is terminal; the
// slot becomes available again but the record is kept.
func CancelBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found", ctx)
		return
	}

	cancelled, statusErr := services.Cancel(booking.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Booking is already cancelled.", ctx)
		return
	}

	booking.Status = cancelled
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Booking cancelled",
		"booking": booking,
	})
}

// AdminConfirmBooking transitions pending -> confirmed.
func AdminConfirmBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var booking models.Booking
	if err := storage.DB.Preload("Apartment").First(&booking, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found", ctx)
		return
	}

	confirmed, statusErr := services.Confirm(booking.Status)
	if statusErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Conflict",
			fmt.Sprintf("Only pending bookings can be confirmed (current status: %s).", booking.Status), ctx)
		return
	}

	booking.Status = confirmed
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var notification models.Notification
	notification.Title = "Booking Confirmed"
	if booking.Apartment != nil {
		notification.Message = fmt.Sprintf("Visit for %s on %s at %s confirmed", booking.Apartment.Title, booking.Date.Format("Jan 2, 2006"), booking.Slot)
	} else {
		notification.Message = fmt.Sprintf("Visit on %s at %s confirmed", booking.Date.Format("Jan 2, 2006"), booking.Slot)
	}
	notification.Type = "booking_status"
	notification.RefID = booking.ID
	notification.RefType = "booking"
	storage.DB.Create(&notification)

	ctx.JSON(iris.Map{
		"message": "Booking confirmed",
		"booking": booking,
	})
}
