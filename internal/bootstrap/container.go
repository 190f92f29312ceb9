package bootstrap

import (
	"log"

	"voicepad-be/internal/config"
	"voicepad-be/internal/controller"
	"voicepad-be/internal/pkg/logger"
	"voicepad-be/internal/pkg/mailer"
	"voicepad-be/internal/repository/memory"
	"voicepad-be/internal/repository/unitofwork"
	"voicepad-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	FolderController   controller.IFolderController
	NoteController     controller.INoteController
	ActivityController controller.IActivityController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires repositories, services and controllers. db may be
// nil when the memory storage driver is selected.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if cfg.Storage.Driver == "memory" {
		uowFactory = memory.NewRepositoryFactory()
		log.Println("[INFO] Using storage driver: MEMORY")
	} else {
		uowFactory = unitofwork.NewRepositoryFactory(db)
		log.Println("[INFO] Using storage driver: POSTGRES")
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, emailService)
	userService := service.NewUserService(uowFactory)
	folderService := service.NewFolderService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, publisherService)
	activityService := service.NewActivityService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		UserController:     controller.NewUserController(userService),
		FolderController:   controller.NewFolderController(folderService),
		NoteController:     controller.NewNoteController(noteService),
		ActivityController: controller.NewActivityController(activityService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
