package routes

import (
	"encoding/json"
	"strconv"

	"primeresidency-server/models"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

// CreateApartment handles the multipart listing form. At least 3 images
// are required; files are written to the uploads dir and their public
// paths stored on the record.
func CreateApartment(ctx iris.Context) {
	ctx.SetMaxRequestBodySize(32 << 20)

	// Unparsable numbers fall through as zero and fail the gt=0 checks.
	price, _ := strconv.ParseFloat(ctx.FormValue("price"), 64)
	area, _ := strconv.ParseFloat(ctx.FormValue("area"), 64)

	input := UpdateApartmentInput{
		Title:       ctx.FormValue("title"),
		Price:       price,
		Area:        area,
		Bedrooms:    ctx.FormValue("bedrooms"),
		Bathrooms:   ctx.FormValue("bathrooms"),
		Furnished:   ctx.FormValue("furnished") == "true",
		View:        ctx.FormValue("view"),
		Description: ctx.FormValue("description"),
	}

	if err := utils.Validate.Struct(input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	form := ctx.Request().MultipartForm
	if form == nil || len(form.File["images"]) < 3 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "At least 3 images are required", ctx)
		return
	}

	imagePaths := make([]string, 0, len(form.File["images"]))
	for _, fileHeader := range form.File["images"] {
		path, saveErr := storage.SaveUpload(fileHeader)
		if saveErr != nil {
			// Orphan files from earlier iterations are cleaned up so a
			// half-saved listing leaves nothing behind.
			for _, p := range imagePaths {
				storage.DeleteUpload(p)
			}
			utils.CreateInternalServerError(ctx)
			return
		}
		imagePaths = append(imagePaths, path)
	}

	marshalledImages, _ := json.Marshal(imagePaths)

	apartment := models.Apartment{
		Title:       input.Title,
		Price:       input.Price,
		Area:        input.Area,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Furnished:   input.Furnished,
		View:        input.View,
		Description: input.Description,
		Images:      datatypes.JSON(marshalledImages),
	}

	if err := storage.DB.Create(&apartment).Error; err != nil {
		for _, p := range imagePaths {
			storage.DeleteUpload(p)
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":   "Apartment listed",
		"apartment": apartment,
	})
}

func GetApartments(ctx iris.Context) {
	var apartments []models.Apartment
	if err := storage.DB.Order("created_at DESC").Find(&apartments).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "apartments": apartments})
}

func GetApartment(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "apartment": apartment})
}

type UpdateApartmentInput struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Area        float64 `json:"area" validate:"required,gt=0"`
	Bedrooms    string  `json:"bedrooms" validate:"required,oneof=1 2 3 4+"`
	Bathrooms   string  `json:"bathrooms" validate:"required,oneof=1 2 3 4+"`
	Furnished   bool    `json:"furnished"`
	View        string  `json:"view"`
	Description string  `json:"description"`
}

func UpdateApartment(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateApartmentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found", ctx)
		return
	}

	apartment.Title = input.Title
	apartment.Price = input.Price
	apartment.Area = input.Area
	apartment.Bedrooms = input.Bedrooms
	apartment.Bathrooms = input.Bathrooms
	apartment.Furnished = input.Furnished
	apartment.View = input.View
	apartment.Description = input.Description

	if err := storage.DB.Save(&apartment).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message":   "Apartment updated",
		"apartment": apartment,
	})
}

// DeleteApartment removes the record and its stored image files. File
// deletion is best effort: failures are logged, never surfaced.
func DeleteApartment(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found", ctx)
		return
	}

	var imagePaths []string
	if apartment.Images != nil {
		json.Unmarshal(apartment.Images, &imagePaths)
	}

	if err := storage.DB.Delete(&apartment).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	for _, p := range imagePaths {
		storage.DeleteUpload(p)
	}

	ctx.JSON(iris.Map{"message": "Apartment deleted"})
}
