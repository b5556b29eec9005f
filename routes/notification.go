package routes

import (
	"primeresidency-server/models"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/kataras/iris/v12"
)

// AdminListNotifications returns recent admin-facing notifications.
func AdminListNotifications(ctx iris.Context) {
	var notifications []models.Notification
	res := storage.DB.Where("user_id = 0").
		Order("created_at DESC").
		Limit(100).
		Find(&notifications)

	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "notifications": notifications})
}

func MarkNotificationRead(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var notification models.Notification
	if err := storage.DB.First(&notification, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Notification not found", ctx)
		return
	}

	notification.IsRead = true
	if err := storage.DB.Save(&notification).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Notification marked read"})
}
