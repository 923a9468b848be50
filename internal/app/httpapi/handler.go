package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	app "github.com/Quentin-Piot/posts-service/internal/app"
	"github.com/Quentin-Piot/posts-service/internal/app/domain/post"
	"github.com/Quentin-Piot/posts-service/internal/app/metrics"
	"github.com/Quentin-Piot/posts-service/internal/app/services/posts"
	"github.com/Quentin-Piot/posts-service/internal/middleware"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewHandler returns a router exposing the core REST API.
func NewHandler(application *app.Application) http.Handler {
	h := &handler{app: application}

	r := mux.NewRouter()
	r.Use(middleware.Metrics())

	r.HandleFunc("/", h.root).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/v1/posts", h.createPost).Methods(http.MethodPost)
	r.HandleFunc("/v1/posts", h.listPosts).Methods(http.MethodGet)
	r.HandleFunc("/v1/posts/{id}", h.getPost).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	return r
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Server is running!")
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) createPost(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if payload.Title == nil {
		writeBadRequest(w, "missing field `title`")
		return
	}
	if payload.Body == nil {
		writeBadRequest(w, "missing field `body`")
		return
	}

	created, err := h.app.Posts.Create(r.Context(), *payload.Title, *payload.Body)
	if err != nil {
		if err == posts.ErrEmptyTitle {
			writeBadRequest(w, err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(created))
}

func (h *handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, fmt.Sprintf("invalid post id: %v", err))
		return
	}

	p, err := h.app.Posts.Get(r.Context(), id)
	if err != nil {
		if post.IsNotFound(err) {
			writePostError(w, http.StatusNotFound,
				fmt.Sprintf("Post with id %s has not been found", id))
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

func (h *handler) listPosts(w http.ResponseWriter, r *http.Request) {
	var filter post.Filter

	query := r.URL.Query()
	if raw := query.Get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			writeBadRequest(w, fmt.Sprintf("invalid published value %q", raw))
			return
		}
		filter.Published = &published
	}
	filter.TitleContains = query.Get("title_contains")

	result, err := h.app.Posts.List(r.Context(), filter)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	response := listPostsResponse{Posts: make([]postResponse, 0, len(result))}
	for _, p := range result {
		response.Posts = append(response.Posts, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, response)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, "The requested resource was not found")
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, badRequestResponse{
		Message: "Bad request error: " + detail,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writePostError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
}

func writePostError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{
		Resource:   "Post",
		Message:    message,
		HappenedAt: time.Now().UTC(),
	})
}
