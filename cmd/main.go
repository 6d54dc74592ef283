package main

import (
	"flag"
	"net/http"

	"reminder-list/internal/handlers"
	"reminder-list/internal/match"
	"reminder-list/internal/reminder"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	tlsCert := flag.String("tls-cert", "", "path to TLS certificate file (optional)")
	tlsKey := flag.String("tls-key", "", "path to TLS key file (optional)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")

	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %s", *logLevel)
	}
	log.SetLevel(level)

	handlers.Log = log
	handlers.List = reminder.NewCollection(match.Fuzzy{}, log)

	r := mux.NewRouter()

	// Fixed paths before the positional ones so "search" and "groups" are
	// never parsed as positions.
	r.HandleFunc("/reminders", handlers.CreateReminderHandler).Methods("POST")
	r.HandleFunc("/reminders", handlers.ListRemindersHandler).Methods("GET")
	r.HandleFunc("/reminders/search", handlers.SearchRemindersHandler).Methods("GET")
	r.HandleFunc("/reminders/groups", handlers.GroupByTagHandler).Methods("GET")
	r.HandleFunc("/reminders/{position}", handlers.GetReminderHandler).Methods("GET")
	r.HandleFunc("/reminders/{position}", handlers.ModifyReminderHandler).Methods("PATCH")
	r.HandleFunc("/reminders/{position}/toggle", handlers.ToggleCompletionHandler).Methods("POST")

	if *tlsCert != "" && *tlsKey != "" {
		log.Println("Starting reminder list with HTTPS on", *addr)
		if err := http.ListenAndServeTLS(*addr, *tlsCert, *tlsKey, r); err != nil {
			log.Fatalf("Could not start HTTPS server: %s", err)
		}
	} else {
		log.Println("Starting reminder list with HTTP on", *addr)
		if err := http.ListenAndServe(*addr, r); err != nil {
			log.Fatalf("Could not start HTTP server: %s", err)
		}
	}
}
