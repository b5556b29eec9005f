package routes

import (
	"time"

	"primeresidency-server/models"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type OwnerInput struct {
	FirstName     string     `json:"firstName" validate:"required,max=256"`
	LastName      string     `json:"lastName" validate:"required,max=256"`
	ResidenceCode string     `json:"residenceCode" validate:"required"`
	Members       int        `json:"members" validate:"required,gte=1,lte=20"`
	MovedInAt     time.Time  `json:"movedInAt" validate:"required"`
	MovedOutAt    *time.Time `json:"movedOutAt"`
}

func CreateOwner(ctx iris.Context) {
	var input OwnerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidOwnerCode(input.ResidenceCode) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "residenceCode must match Ow followed by 4 digits", ctx)
		return
	}

	var existing models.Owner
	exists := storage.DB.Where("residence_code = ?", input.ResidenceCode).Limit(1).Find(&existing)
	if exists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if exists.RowsAffected > 0 {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Residence code already registered.", ctx)
		return
	}

	owner := models.Owner{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		ResidenceCode: input.ResidenceCode,
		Members:       input.Members,
		MovedInAt:     input.MovedInAt,
		MovedOutAt:    input.MovedOutAt,
	}

	if err := storage.DB.Create(&owner).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Owner registered",
		"owner":   owner,
	})
}

func GetOwners(ctx iris.Context) {
	var owners []models.Owner
	if err := storage.DB.Order("residence_code ASC").Find(&owners).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "owners": owners})
}

func GetOwner(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var owner models.Owner
	if err := storage.DB.First(&owner, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Owner not found", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "owner": owner})
}

func UpdateOwner(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input OwnerInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidOwnerCode(input.ResidenceCode) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "residenceCode must match Ow followed by 4 digits", ctx)
		return
	}

	var owner models.Owner
	if err := storage.DB.First(&owner, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Owner not found", ctx)
		return
	}

	var clash models.Owner
	clashQuery := storage.DB.Where("residence_code = ? AND id <> ?", input.ResidenceCode, owner.ID).Limit(1).Find(&clash)
	if clashQuery.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if clashQuery.RowsAffected > 0 {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "Residence code already registered.", ctx)
		return
	}

	owner.FirstName = input.FirstName
	owner.LastName = input.LastName
	owner.ResidenceCode = input.ResidenceCode
	owner.Members = input.Members
	owner.MovedInAt = input.MovedInAt
	owner.MovedOutAt = input.MovedOutAt

	if err := storage.DB.Save(&owner).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Owner updated",
		"owner":   owner,
	})
}

func DeleteOwner(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var owner models.Owner
	if err := storage.DB.First(&owner, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Owner not found", ctx)
		return
	}

	if err := storage.DB.Delete(&owner).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Owner deleted"})
}
