package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/vmfarias/readrush/internal/container"
	"github.com/vmfarias/readrush/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:         c.UserContainer.Handler,
		DeckHandler:         c.DeckContainer.Handler,
		DocumentHandler:     c.DocumentContainer.Handler,
		StudySessionHandler: c.StudySessionContainer.Handler,
		QuizHandler:         c.QuizContainer.Handler,
		FlashcardHandler:    c.FlashcardContainer.Handler,
		AIGenHandler:        c.AIGenContainer.Handler,
		AttemptHandler:      c.AttemptContainer.Handler,
		StreakHandler:       c.StreakContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(chiadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := http.ListenAndServe(":"+port, r); err != nil {
		panic(err)
	}
}
