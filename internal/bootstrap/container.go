package bootstrap

import (
	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/unitofwork"
	"notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	TagController  controller.ITagController

	// Background services (exposed for main to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.NoteEventsTopic)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	auditService := service.NewAuditService(pubSub, cfg.App.NoteEventsTopic, sysLogger)

	// Controllers
	noteController := controller.NewNoteController(noteService)
	tagController := controller.NewTagController(noteService)

	return &Container{
		NoteController: noteController,
		TagController:  tagController,
		AuditService:   auditService,
		Logger:         sysLogger,
	}
}
