package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Subjects(ctx context.Context) error {
	subjects, err := a.subjects.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, s := range subjects {
		fmt.Printf("[%d] %s", s.ID, s.Title)
		if s.Description != "" {
			fmt.Printf(" - %s", s.Description)
		}
		fmt.Println()
	}
	return nil
}

func (a *App) AddSubject(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Subject title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	subject, err := a.subjects.Create(ctx, title, description)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	printlnFn("Created subject", subject.ID)
	return nil
}
