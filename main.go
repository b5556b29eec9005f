package main

import (
	"log"
	"os"

	"primeresidency-server/routes"
	"primeresidency-server/storage"
	"primeresidency-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()
	storage.InitializeUploads()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the admin console and resident frontend
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// Uploaded apartment and voter images
	app.HandleDir("/uploads", iris.Dir(storage.UploadsDir()))

	resetTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("EMAIL_TOKEN_SECRET")))
	resetTokenVerifier.WithDefaultBlocklist()
	resetTokenVerifierMiddleware := resetTokenVerifier.Verify(func() interface{} {
		return new(utils.ForgotPasswordToken)
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	accounts := app.Party("/api/accounts")
	{
		accounts.Post("/register", routes.Register)
		accounts.Post("/login", routes.Login)
		accounts.Post("/google", routes.GoogleLoginOrSignUp)
		accounts.Post("/forgotpassword", routes.ForgotPassword)
		accounts.Post("/resetpassword", resetTokenVerifierMiddleware, routes.ResetPassword)
		accounts.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	apartments := app.Party("/api/apartments")
	{
		apartments.Get("/", routes.GetApartments)
		apartments.Post("/", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.CreateApartment)
		apartments.Get("/{id:uint}", routes.GetApartment)
		apartments.Put("/{id:uint}", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.UpdateApartment)
		apartments.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.DeleteApartment)
	}

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/booking", routes.CreateBooking)
		bookings.Get("/available-slots", routes.GetAvailableBookingSlots)
		bookings.Get("/user/{email}", routes.GetUserBookings)
		bookings.Put("/{id:uint}", routes.UpdateBooking)
		bookings.Put("/{id:uint}/cancel", routes.CancelBooking)
	}

	cleaning := app.Party("/api/cleaningservice")
	{
		cleaning.Post("/cleaning", routes.CreateCleaning)
		cleaning.Get("/available-slots", routes.GetAvailableCleaningSlots)
		cleaning.Get("/owner/{ownerCode}", routes.GetOwnerCleanings)
		cleaning.Put("/{id:uint}", routes.UpdateCleaning)
		cleaning.Put("/{id:uint}/cancel", routes.CancelCleaning)
	}

	health := app.Party("/api/healthservice")
	{
		health.Post("/health", routes.CreateHealth)
		health.Get("/available-slots", routes.GetAvailableHealthSlots)
		health.Get("/owner/{ownerCode}", routes.GetOwnerHealthAppointments)
		health.Put("/{id:uint}", routes.UpdateHealth)
		health.Put("/{id:uint}/cancel", routes.CancelHealth)
	}

	security := app.Party("/api/securityservice")
	{
		security.Post("/security", routes.CreateSecurity)
		security.Get("/owner/{ownerCode}", routes.GetOwnerSecurityRequests)
		security.Put("/{id:uint}/cancel", routes.CancelSecurity)
	}

	owners := app.Party("/api/owners", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		owners.Post("/", routes.CreateOwner)
		owners.Get("/", routes.GetOwners)
		owners.Get("/{id:uint}", routes.GetOwner)
		owners.Put("/{id:uint}", routes.UpdateOwner)
		owners.Delete("/{id:uint}", routes.DeleteOwner)
	}

	polls := app.Party("/api/polls")
	{
		polls.Get("/", routes.GetPolls)
		polls.Get("/{id:uint}", routes.GetPoll)
		polls.Post("/{id:uint}/vote/{optionId:uint}", routes.Vote)
		polls.Post("/", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.CreatePoll)
		polls.Put("/{id:uint}", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.UpdatePoll)
		polls.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.DeletePoll)
	}

	voters := app.Party("/api/voters")
	{
		voters.Post("/", routes.RegisterVoter)
		voters.Get("/", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.GetVoters)
		voters.Patch("/{id:uint}/verify", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.VerifyVoter)
		voters.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.DeleteVoter)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/bookings", routes.AdminListBookings)
		admin.Put("/bookings/confirm/{id:uint}", routes.AdminConfirmBooking)
		admin.Get("/cleanings", routes.AdminListCleanings)
		admin.Get("/health", routes.AdminListHealthAppointments)
		admin.Get("/security", routes.AdminListSecurityRequests)
		admin.Get("/notifications", routes.AdminListNotifications)
		admin.Patch("/notifications/{id:uint}/read", routes.MarkNotificationRead)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Println("PrimeResidency server listening on :" + port)
	app.Listen(":" + port)
}
