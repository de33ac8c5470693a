package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

type Env struct {
	Production          bool
	Subject             string
	ServiceAccountEmail string
	SpreadsheetID       string
	SpreadsheetRange    string
	AWSAPIURL           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSRegion           string
}

const (
	defaultSpreadsheetRange = "Sheet1!A:D"
	defaultAWSRegion        = "eu-west-2"
)

var (
	env      *Env
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	GinLog   *log.Logger
)

func initEnv() error {
	runningEnvironment := os.Getenv("ENV")

	env = &Env{
		Production:          runningEnvironment == "prod",
		Subject:             os.Getenv("GROUP_LIST_SUBJECT"),
		ServiceAccountEmail: os.Getenv("SERVICE_ACCOUNT_EMAIL"),
		SpreadsheetID:       os.Getenv("SPREADSHEET_ID"),
		SpreadsheetRange:    os.Getenv("SPREADSHEET_RANGE"),
		AWSAPIURL:           os.Getenv("API_URL"),
		AWSAccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:           os.Getenv("AWS_REGION"),
	}

	if env.SpreadsheetRange == "" {
		env.SpreadsheetRange = defaultSpreadsheetRange
	}
	if env.AWSRegion == "" {
		env.AWSRegion = defaultAWSRegion
	}

	var missing []string
	if env.Subject == "" {
		missing = append(missing, "GROUP_LIST_SUBJECT")
	}
	if env.SpreadsheetID == "" {
		missing = append(missing, "SPREADSHEET_ID")
	}
	if env.AWSAPIURL == "" {
		missing = append(missing, "API_URL")
	}
	if env.AWSAccessKeyID == "" {
		missing = append(missing, "AWS_ACCESS_KEY_ID")
	}
	if env.AWSSecretAccessKey == "" {
		missing = append(missing, "AWS_SECRET_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func initLogger() {
	//for now they always write to same place, just diff prefixes
	infoHandle := os.Stdout

	InfoLog = log.New(infoHandle, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(infoHandle, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	GinLog = log.New(infoHandle, "", log.Ltime)

	if env.Production {
		ctx := context.Background()

		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			projectID = "onepoint-integrations"
		}

		client, err := logging.NewClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Failed to create client: %v", err)
		}

		logName := "gws-functions-log"

		InfoLog = client.Logger(logName).StandardLogger(logging.Info)
		InfoLog.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

		ErrorLog = client.Logger(logName).StandardLogger(logging.Error)
		ErrorLog.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

		GinLog = client.Logger(logName).StandardLogger(logging.Info)
		GinLog.SetFlags(log.Ltime)
	}
}

func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		end := time.Now()
		latency := end.Sub(start)

		clientIP := c.GetHeader("X-Real-IP")
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		GinLog.Printf("[GIN] %v | %3d | %13v | %15s | %-7s %s\n",
			end.Format("2006/01/02 - 15:04:05"),
			statusCode,
			latency,
			clientIP,
			method,
			path,
		)
	}
}
