package routes

import (
	"strings"

	"primeresidency-server/models"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type PollInput struct {
	Question string   `json:"question" validate:"required,max=512"`
	Options  []string `json:"options" validate:"required,min=2,dive,required,max=256"`
}

func CreatePoll(ctx iris.Context) {
	var input PollInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	poll := models.Poll{Question: input.Question}
	for i, label := range input.Options {
		poll.Options = append(poll.Options, models.PollOption{
			Label:    label,
			Position: i,
		})
	}

	if err := storage.DB.Create(&poll).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message": "Poll created",
		"poll":    poll,
	})
}

func GetPolls(ctx iris.Context) {
	var polls []models.Poll
	res := storage.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("poll_options.position ASC")
	}).Order("created_at DESC").Find(&polls)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "polls": polls})
}

func GetPoll(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var poll models.Poll
	res := storage.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("poll_options.position ASC")
	}).First(&poll, id)

	if res.Error != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Poll not found", ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "poll": poll})
}

// UpdatePoll replaces the question and option list. Vote counts are kept
// for options whose label survives (case-insensitive match); new labels
// start at zero.
func UpdatePoll(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input PollInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var poll models.Poll
	if err := storage.DB.Preload("Options").First(&poll, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Poll not found", ctx)
		return
	}

	newOptions := mergePollOptions(poll.Options, input.Options)

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.PollOption{}).Error; err != nil {
			return err
		}

		poll.Question = input.Question
		poll.Options = newOptions
		return tx.Save(&poll).Error
	})

	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"message": "Poll updated",
		"poll":    poll,
	})
}

// mergePollOptions builds the replacement option rows, carrying votes over
// from old options with the same label ignoring case.
func mergePollOptions(existing []models.PollOption, labels []string) []models.PollOption {
	votesByLabel := make(map[string]int, len(existing))
	for _, opt := range existing {
		votesByLabel[strings.ToLower(opt.Label)] = opt.Votes
	}

	options := make([]models.PollOption, 0, len(labels))
	for i, label := range labels {
		options = append(options, models.PollOption{
			Label:    label,
			Votes:    votesByLabel[strings.ToLower(label)],
			Position: i,
		})
	}
	return options
}

// Vote increments an option's counter. The option must belong to the poll.
func Vote(ctx iris.Context) {
	pollID := ctx.Params().Get("id")
	optionID := ctx.Params().Get("optionId")

	var poll models.Poll
	if err := storage.DB.First(&poll, pollID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Poll not found", ctx)
		return
	}

	var option models.PollOption
	lookup := storage.DB.Where("id = ? AND poll_id = ?", optionID, poll.ID).Limit(1).Find(&option)
	if lookup.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if lookup.RowsAffected == 0 {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Option not found", ctx)
		return
	}

	if err := storage.DB.Model(&option).UpdateColumn("votes", gorm.Expr("votes + 1")).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	option.Votes++
	ctx.JSON(iris.Map{
		"message": "Vote recorded",
		"option":  option,
	})
}

func DeletePoll(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var poll models.Poll
	if err := storage.DB.First(&poll, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Poll not found", ctx)
		return
	}

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.PollOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&poll).Error
	})

	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Poll deleted"})
}
