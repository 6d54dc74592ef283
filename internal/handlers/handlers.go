package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"reminder-list/internal/reminder"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

var (
	// List is the collection all handlers operate on. The collection itself
	// is single-actor; Mu supplies the mutual exclusion around it.
	List *reminder.Collection
	Mu   sync.Mutex
	Log  = logrus.New()
)

type createRequest struct {
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

type createResponse struct {
	Position int                `json:"position"`
	Reminder *reminder.Reminder `json:"reminder"`
}

type modifyRequest struct {
	Description string `json:"description"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDomainError maps core errors onto HTTP statuses: invalid positions
// are 404, rejected mutations are 400.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ie *reminder.IndexError
	var ve *reminder.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &ie):
		status = http.StatusNotFound
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
	Log.Infof("%s %s %s %d - %v", r.Method, r.URL.Path, r.UserAgent(), status, err)
}

func positionFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["position"])
}

func CreateReminderHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: %v", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest, err)
		return
	}
	Mu.Lock()
	rem, err := List.AddReminder(req.Description, req.Tag)
	position := List.Size()
	Mu.Unlock()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{Position: position, Reminder: rem})
	Log.Infof("%s %s %s %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusCreated)
}

func ListRemindersHandler(w http.ResponseWriter, r *http.Request) {
	Mu.Lock()
	list := List.Reminders()
	Mu.Unlock()
	writeJSON(w, http.StatusOK, list)
	Log.Infof("%s %s %s %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK)
}

func GetReminderHandler(w http.ResponseWriter, r *http.Request) {
	position, err := positionFromRequest(r)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: %v", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest, err)
		return
	}
	Mu.Lock()
	rem, err := List.GetReminder(position)
	Mu.Unlock()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
	Log.Infof("%s %s %s %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK)
}

func ModifyReminderHandler(w http.ResponseWriter, r *http.Request) {
	position, err := positionFromRequest(r)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: %v", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest, err)
		return
	}
	var req modifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: %v", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest, err)
		return
	}
	Mu.Lock()
	err = List.ModifyReminder(position, req.Description)
	var rem *reminder.Reminder
	if err == nil {
		rem, err = List.GetReminder(position)
	}
	Mu.Unlock()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
	Log.Infof("%s %s %s %d - PATCH reminder %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK, position)
}

func ToggleCompletionHandler(w http.ResponseWriter, r *http.Request) {
	position, err := positionFromRequest(r)
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: %v", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest, err)
		return
	}
	Mu.Lock()
	err = List.ToggleCompletion(position)
	var rem *reminder.Reminder
	if err == nil {
		rem, err = List.GetReminder(position)
	}
	Mu.Unlock()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
	Log.Infof("%s %s %s %d - toggled reminder %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK, position)
}

func SearchRemindersHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		http.Error(w, "q query param required", http.StatusBadRequest)
		Log.Infof("%s %s %s %d - Bad Request: q query param required", r.Method, r.URL.Path, r.UserAgent(), http.StatusBadRequest)
		return
	}
	Mu.Lock()
	results := List.Search(keyword)
	Mu.Unlock()
	if results == nil {
		results = []*reminder.Reminder{}
	}
	writeJSON(w, http.StatusOK, results)
	Log.Infof("%s %s %s %d - search %q: %d results", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK, keyword, len(results))
}

func GroupByTagHandler(w http.ResponseWriter, r *http.Request) {
	Mu.Lock()
	groups := List.GroupByTag()
	Mu.Unlock()
	writeJSON(w, http.StatusOK, groups)
	Log.Infof("%s %s %s %d", r.Method, r.URL.Path, r.UserAgent(), http.StatusOK)
}
