package web

import (
	"context"
	"embed"
	"html/template"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pathakanu/medReminder/internal/medinfo"
	"github.com/pathakanu/medReminder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionName = "medreminder_session"

// ReminderStore is the persistence the web layer needs.
type ReminderStore interface {
	Add(ctx context.Context, reminder *model.Reminder) error
	List(ctx context.Context) ([]model.Reminder, error)
}

// InfoLookup fetches a medicine description.
type InfoLookup interface {
	Lookup(ctx context.Context, name string) medinfo.Result
}

// Server serves the reminder form and its two form endpoints.
type Server struct {
	store  ReminderStore
	info   InfoLookup
	logger *log.Logger
}

// New creates the web server.
func New(store ReminderStore, info InfoLookup, logger *log.Logger) *Server {
	return &Server{store: store, info: info, logger: logger}
}

// Router builds the gin engine. sessionSecret signs the flash cookie.
func (s *Server) Router(sessionSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"orDash": orDash,
	}).ParseFS(templateFS, "templates/*.html")))

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/", s.index)
	r.POST("/add_reminder", s.addReminder)
	r.POST("/get_info", s.getInfo)
	return r
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
