package bootstrap

import (
	"github.com/heversonalves/canon/internal/config"
	"github.com/heversonalves/canon/internal/controller"
	"github.com/heversonalves/canon/internal/handler"
	"github.com/heversonalves/canon/internal/pkg/logger"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
	"github.com/heversonalves/canon/internal/service"
	"github.com/heversonalves/canon/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BibleController        controller.IBibleController
	TranslationController  controller.ITranslationController
	StudySessionController controller.IStudySessionController
	NoteController         controller.INoteController
	HomileticsController   controller.IHomileticsController
	CurationController     controller.ICurationController
	DidaskalosController   controller.IDidaskalosController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	SessionFeedHandler *handler.SessionFeedHandler
	WebSocketHub       *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Events.SessionUpdatedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.SessionUpdatedTopic,
		wsHub,
		sysLogger,
	)

	bibleService := service.NewBibleService(uowFactory)
	translationService := service.NewTranslationService(uowFactory, bibleService)
	sessionService := service.NewStudySessionService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	homileticsService := service.NewHomileticsService(uowFactory)
	curationService := service.NewCurationService(uowFactory)
	didaskalosService := service.NewDidaskalosService()

	// 5. Controllers
	return &Container{
		BibleController:        controller.NewBibleController(bibleService),
		TranslationController:  controller.NewTranslationController(translationService),
		StudySessionController: controller.NewStudySessionController(sessionService),
		NoteController:         controller.NewNoteController(noteService),
		HomileticsController:   controller.NewHomileticsController(homileticsService),
		CurationController:     controller.NewCurationController(curationService),
		DidaskalosController:   controller.NewDidaskalosController(didaskalosService),

		SessionFeedHandler: handler.NewSessionFeedHandler(wsHub, sysLogger),
		WebSocketHub:       wsHub,

		ConsumerService: consumerService,
	}
}
