package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heversonalves/canon/internal/config"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/pkg/logger"
	"github.com/heversonalves/canon/internal/study"
	"github.com/heversonalves/canon/internal/study/httpapi"

	"github.com/fatih/color"
)

// A small terminal consumer of the study manager: loads (or bootstraps) the
// last session, optionally moves it to a new reference or stage, and prints
// the chapter with the stage-gate table.
func main() {
	var (
		baseURL     = flag.String("api", "", "base URL of the canon API server (default derived from config)")
		translation = flag.String("translation", "", "move the session to this translation (with -book and -chapter)")
		book        = flag.String("book", "", "move the session to this book")
		chapter     = flag.Int("chapter", 0, "move the session to this chapter")
		stage       = flag.String("stage", "", "move the session to this stage")
		note        = flag.String("note", "", "append a note to the session before printing")
	)
	flag.Parse()

	cfg := config.Load()
	if *baseURL == "" {
		*baseURL = cfg.App.BaseURL
	}

	client := httpapi.NewClient(*baseURL)
	defer client.Close()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	manager := study.NewManager(client, client, sysLogger)
	ctx := context.Background()

	if err := manager.LoadLastSession(ctx); err != nil {
		log.Fatalf("load last session: %v", err)
	}

	if *translation != "" || *book != "" || *chapter > 0 {
		session := manager.Session()
		t := session.Translation
		if *translation != "" {
			t = entity.Translation(*translation)
		}
		b := session.Book
		if *book != "" {
			b = *book
		}
		ch := session.Chapter
		if *chapter > 0 {
			ch = *chapter
		}
		if err := manager.SetReference(ctx, t, b, ch); err != nil {
			log.Fatalf("set reference: %v", err)
		}
	}

	if *stage != "" {
		if err := manager.SetStage(ctx, entity.StudyStage(*stage)); err != nil {
			log.Fatalf("set stage: %v", err)
		}
	}

	if *note != "" {
		if err := manager.AddNote(ctx, entity.Note{
			Id:      fmt.Sprintf("note-%d", time.Now().UnixMilli()),
			Source:  "cli",
			Content: *note,
		}); err != nil {
			log.Fatalf("add note: %v", err)
		}
	}

	printSession(manager)
}

func printSession(manager *study.Manager) {
	session := manager.Session()

	color.Cyan("%s %s %d", session.Translation, session.Book, session.Chapter)
	fmt.Printf("session %s, stage %s, last accessed %s\n\n", session.Id, session.Stage, session.LastAccessed)

	for _, verse := range session.Verses {
		fmt.Printf("%3d  %s\n", verse.Number, verse.Text)
	}
	if len(session.Verses) == 0 {
		color.Yellow("(no verses for this reference)")
	}

	fmt.Println()
	color.Cyan("stages")
	for _, s := range entity.StageOrder {
		if manager.CanAccessStage(s) {
			color.Green("  open    %s", s)
		} else {
			color.Red("  locked  %s", s)
		}
	}

	if len(session.Notes) > 0 {
		fmt.Println()
		color.Cyan("notes")
		for _, n := range session.Notes {
			fmt.Printf("  [%s] %s\n", n.Source, n.Content)
		}
	}
}
