package deps

import (
	"context"
	"os"
	"sync"
	"time"

	"selector/internal/config"
	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	dl "selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	duow "selector/internal/core/domain/unit_of_work"
	dbaccount "selector/internal/db/account"
	dbregistertoken "selector/internal/db/register_token"
	uow "selector/internal/db/unit_of_work"
	"selector/internal/implementations/email"
	"selector/internal/implementations/logging"
	passwordhasher "selector/internal/implementations/password_hasher"
	randomstringgenerator "selector/internal/implementations/random_string_generator"
	templaterenderer "selector/internal/implementations/template_renderer"
	"selector/internal/rabbitmq"
	dispatchscheduler "selector/internal/rabbitmq/publishers/dispatch_scheduler"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork              duow.UnitOfWork
	AccountRepository       account.Repository
	RegisterTokenRepository registration.Repository

	PasswordHasher         account.PasswordHasher
	RegisterTokenGenerator registration.TokenGenerator
	RegisterEmailRenderer  registration.Renderer
	RegisterEmailSettings  registration.EmailSettings
	Mailer                 account.Mailer

	DispatchScheduler registration.DispatchScheduler
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)
	deps.RegisterTokenRepository = dbregistertoken.NewPgxRepository(deps.DB)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.RegisterTokenGenerator = randomstringgenerator.NewGenerator()
	deps.RegisterEmailRenderer = deps.initRenderer()
	deps.RegisterEmailSettings = registration.EmailSettings{
		Subject: deps.Config.RegisterEmailSubject,
		From:    deps.Config.RegisterEmailFromAddress,
	}
	deps.Mailer = deps.initMailer()

	closeDispatchScheduler := deps.initRabbitmqDispatchScheduler()

	return deps, func() {
		closeFuncs := []func(){
			closeDispatchScheduler,
			closeRabbitmqConn,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.LogLevel)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqDispatchScheduler() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqRegisterDispatchQueue
	if err = rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not create RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.DispatchScheduler = dispatchscheduler.NewRabbitMQ(deps.Logger, rabbitmqChannel, queue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down register token dispatch scheduler.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Register token dispatch scheduler shut down.")
	}
}

func (deps *Deps) initRenderer() registration.Renderer {
	var (
		renderer *templaterenderer.TextRenderer
		err      error
	)
	if deps.Config.TemplatesDir != "" {
		renderer, err = templaterenderer.NewFromFS(os.DirFS(deps.Config.TemplatesDir))
	} else {
		renderer, err = templaterenderer.New()
	}
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load email templates.", dl.Entry("err", err))
		panic(err)
	}
	return renderer
}

func (deps *Deps) initMailer() account.Mailer {
	defaultFrom := c.NewEmail(deps.Config.DefaultFromEmail)
	switch deps.Config.MailBackend {
	case config.MailBackendSES:
		return email.NewSESMailer(deps.initAwsConfig(), defaultFrom)
	case config.MailBackendSMTP:
		return email.NewSMTPMailer(
			deps.Config.SMTPHost,
			deps.Config.SMTPPort,
			deps.Config.SMTPUsername,
			deps.Config.SMTPPassword,
			defaultFrom,
		)
	default:
		return email.NewLogMailer(deps.Logger, defaultFrom)
	}
}

func (deps *Deps) initAwsConfig() aws.Config {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		panic(err)
	}
	return cfg
}
