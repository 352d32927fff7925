package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"grade-portal/internal/db"
	"grade-portal/internal/event"
	"grade-portal/internal/handlers"
	"grade-portal/internal/repository"
	"grade-portal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, portal events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("grade_portal")

	// Repositories
	subjectRepo := repository.NewSubjectRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	gradeRepo := repository.NewGradeRepository(database)
	studentRepo := repository.NewStudentRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	recordRepo := repository.NewRecordRepository(database)

	// Services
	seeder := service.NewProgressSeeder(subjectRepo, studentRepo, gradeRepo, progressRepo)
	importService := service.NewImportService(questionRepo, studentRepo, seeder)
	subjectService := service.NewSubjectService(subjectRepo, seeder)
	questionService := service.NewQuestionService(questionRepo)
	gradeService := service.NewGradeService(gradeRepo, seeder)
	studentService := service.NewStudentService(studentRepo, seeder)
	exportService := service.NewExportService(studentRepo, progressRepo, recordRepo, gradeRepo)

	var quizPublisher service.Publisher
	if publisher != nil {
		quizPublisher = publisher
	}
	quizService := service.NewQuizService(questionRepo, gradeRepo, progressRepo, recordRepo, quizPublisher)

	// Handlers
	subjectHandler := handlers.NewSubjectHandler(subjectService)
	questionHandler := handlers.NewQuestionHandler(questionService, importService)
	gradeHandler := handlers.NewGradeHandler(gradeService)
	studentHandler := handlers.NewStudentHandler(studentService, importService)
	quizHandler := handlers.NewQuizHandler(quizService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Public routes - subjects and ladders are browsable without login
	publicSubject := r.Group("/public/portal/subject")
	{
		publicSubject.GET("/", subjectHandler.ListSubjects)
		publicSubject.GET("/:id", subjectHandler.GetSubject)
	}
	publicGrade := r.Group("/public/portal/grade")
	{
		publicGrade.GET("/:subjectId", gradeHandler.ListGrades)
	}

	// Protected routes - student quiz flow
	protectedQuiz := r.Group("/protected/portal/quiz")
	protectedQuiz.Use(requireUser())
	{
		protectedQuiz.POST("/:subjectId/start", quizHandler.StartQuiz)
		protectedQuiz.POST("/:subjectId/submit", quizHandler.SubmitQuiz)
	}

	// Protected routes - teacher administration
	protectedAdmin := r.Group("/protected/portal/admin")
	protectedAdmin.Use(requireUser())
	{
		protectedAdmin.POST("/subject", subjectHandler.CreateSubject)

		protectedAdmin.GET("/question/:subjectId", questionHandler.ListQuestions)
		protectedAdmin.POST("/question/:subjectId", questionHandler.CreateQuestion)
		protectedAdmin.POST("/question/:subjectId/bulk", questionHandler.BulkImportQuestions)
		protectedAdmin.PUT("/question/id/:id", questionHandler.UpdateQuestion)
		protectedAdmin.DELETE("/question/id/:id", questionHandler.DeleteQuestion)

		protectedAdmin.POST("/grade/:subjectId", gradeHandler.CreateGrade)
		protectedAdmin.PUT("/grade/id/:id", gradeHandler.UpdateGrade)
		protectedAdmin.DELETE("/grade/id/:id", gradeHandler.DeleteGrade)

		protectedAdmin.GET("/student", studentHandler.ListStudents)
		protectedAdmin.GET("/student/:id", studentHandler.GetStudent)
		protectedAdmin.POST("/student", studentHandler.CreateStudent)
		protectedAdmin.POST("/student/bulk", studentHandler.BulkImportStudents)
		protectedAdmin.PUT("/student/:id", studentHandler.UpdateStudent)
		protectedAdmin.DELETE("/student/:id", studentHandler.DeleteStudent)

		protectedAdmin.GET("/export/:subjectId/students", exportHandler.ExportStudents)
		protectedAdmin.GET("/export/:subjectId/records", exportHandler.ExportRecords)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// requireUser rejects requests without the gateway's X-User-ID header.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
