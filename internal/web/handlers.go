package web

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pathakanu/medReminder/internal/model"
)

// FlashReminderAdded is shown after a reminder is stored.
const FlashReminderAdded = "Reminder added successfully!"

type indexPage struct {
	Messages  []string
	Reminders []model.Reminder
}

// index renders the form, pending flash messages and stored reminders.
func (s *Server) index(c *gin.Context) {
	reminders, err := s.store.List(c.Request.Context())
	if err != nil {
		s.logger.Printf("web: %v", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	session := sessions.Default(c)
	var messages []string
	for _, flash := range session.Flashes() {
		if msg, ok := flash.(string); ok {
			messages = append(messages, msg)
		}
	}
	if len(messages) > 0 {
		if err := session.Save(); err != nil {
			s.logger.Printf("web: clear flashes: %v", err)
		}
	}

	c.HTML(http.StatusOK, "index.html", indexPage{Messages: messages, Reminders: reminders})
}

// addReminder stores the submitted fields as-is.
func (s *Server) addReminder(c *gin.Context) {
	fields, err := postFormFields(c, "medicine_name", "dosage", "reminder_time", "health_check")
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	reminder := &model.Reminder{
		MedicineName: fields["medicine_name"],
		Dosage:       fields["dosage"],
		Time:         fields["reminder_time"],
		HealthCheck:  fields["health_check"],
	}
	if err := s.store.Add(c.Request.Context(), reminder); err != nil {
		s.logger.Printf("web: %v", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	s.flashAndRedirect(c, FlashReminderAdded)
}

// getInfo looks up the medicine and flashes whatever the lookup produced.
func (s *Server) getInfo(c *gin.Context) {
	fields, err := postFormFields(c, "medicine_name")
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	result := s.info.Lookup(c.Request.Context(), fields["medicine_name"])
	if result.Err != nil {
		s.logger.Printf("web: info lookup %q (%s): %v", fields["medicine_name"], result.Kind, result.Err)
	}
	s.flashAndRedirect(c, result.Message())
}

func (s *Server) flashAndRedirect(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		s.logger.Printf("web: save flash: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// postFormFields returns the named form values. A missing key is an error;
// an empty value is not.
func postFormFields(c *gin.Context, keys ...string) (map[string]string, error) {
	fields := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok := c.GetPostForm(key)
		if !ok {
			return nil, fmt.Errorf("missing form field %q", key)
		}
		fields[key] = value
	}
	return fields, nil
}
