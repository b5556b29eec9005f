package routes

import (
	"strings"

	"primeresidency-server/models"
	"primeresidency-server/services"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

type RegisterVoterInput struct {
	VoterID   string `json:"voterID"`
	FullName  string `json:"fullName" validate:"required,max=256"`
	Email     string `json:"email" validate:"required,email"`
	HouseCode string `json:"houseCode" validate:"required,max=64"`
	Photo     string `json:"photo"` // optional base64 image
}

// RegisterVoter creates a voter record. The voter identifier is generated
// server-side just before the first persist when it is absent or does not
// match the expected pattern.
func RegisterVoter(ctx iris.Context) {
	var input RegisterVoterInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	email := strings.ToLower(input.Email)

	var existing models.Voter
	exists := storage.DB.Where("email = ?", email).Limit(1).Find(&existing)
	if exists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if exists.RowsAffected > 0 {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	voterID := input.VoterID
	if !utils.VoterIDPattern.MatchString(voterID) {
		voterID = utils.GenerateVoterID(services.NowFunc())
	}

	photoPath := ""
	if input.Photo != "" {
		path, saveErr := storage.SaveBase64Image(input.Photo)
		if saveErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "photo must be a base64 encoded image", ctx)
			return
		}
		photoPath = path
	}

	voter := models.Voter{
		VoterID:   voterID,
		FullName:  input.FullName,
		Email:     email,
		HouseCode: input.HouseCode,
		PhotoPath: photoPath,
	}

	if err := storage.DB.Create(&voter).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Voter registered",
		"voter":   voter,
	})
}

func GetVoters(ctx iris.Context) {
	var voters []models.Voter
	if err := storage.DB.Order("created_at DESC").Find(&voters).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "voters": voters})
}

// VerifyVoter marks a voter verified with the current timestamp.
func VerifyVoter(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var voter models.Voter
	if err := storage.DB.First(&voter, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Voter not found", ctx)
		return
	}

	now := services.NowFunc()
	voter.Verified = true
	voter.VerifiedAt = &now

	if err := storage.DB.Save(&voter).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Voter verified",
		"voter":   voter,
	})
}

// DeleteVoter removes the record; the stored photo is cleaned up best
// effort.
func DeleteVoter(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var voter models.Voter
	if err := storage.DB.First(&voter, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Voter not found", ctx)
		return
	}

	if err := storage.DB.Delete(&voter).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if voter.PhotoPath != "" {
		storage.DeleteUpload(voter.PhotoPath)
	}

	ctx.JSON(iris.Map{"message": "Voter deleted"})
}
