package main

import "fmt"

var resetCmd = app.Command("reset", "Forget the entered triangle.")

func runReset() error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Session cleared.")
	return nil
}
