package endpoints

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/inkwell-vtt/inkwell/pkg/audit"
	"github.com/inkwell-vtt/inkwell/pkg/cascade"
	"github.com/inkwell-vtt/inkwell/pkg/config"
	"github.com/inkwell-vtt/inkwell/pkg/model"
	"github.com/inkwell-vtt/inkwell/pkg/ownership"
	"github.com/inkwell-vtt/inkwell/pkg/server"
	"github.com/inkwell-vtt/inkwell/pkg/server/middleware"
)

// treeSource is what the folder endpoints need from the folder tree.
type treeSource interface {
	cascade.Tree
	Folder(kind, folderID string) (*model.Folder, error)
	FoldersByKind(kind string, limit int) ([]model.Folder, error)
}

// cascadeRunner is satisfied by *cascade.Engine.
type cascadeRunner interface {
	Cascade(root model.Folder, assignment ownership.Assignment) cascade.Result
}

// CascadeResponse is the response from the ownership cascade endpoint
type CascadeResponse struct {
	Outcome    cascade.Outcome `json:"outcome"`
	Documents  int             `json:"documents"`
	Subfolders int             `json:"subfolders"`
	Message    string          `json:"message"`
}

// FolderListItem is one folder in a kind listing
type FolderListItem struct {
	FolderID string `json:"folder_id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	ParentID string `json:"parent_id,omitempty"`
}

// FolderSummaryResponse describes a folder subtree
type FolderSummaryResponse struct {
	FolderID   string `json:"folder_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Subfolders int    `json:"subfolders"`
	Documents  int    `json:"documents"`
}

// RegisterFolderEndpoints registers the folder-related HTTP endpoints
func RegisterFolderEndpoints(s *server.Server) error {
	auth, err := middleware.NewTokenAuthenticatorFromEnv()
	if err != nil {
		return err
	}

	tree := cascade.NewGormTree(s.DB)
	store := cascade.NewGormStore(s.DB)
	engine := cascade.NewEngine(tree, store).
		WithSettleDelay(s.Config.SettleDelay())

	foldersRouter := s.Router.PathPrefix("/folders").Subrouter()
	foldersRouter.Use(auth.Middleware)

	// POST /folders/{kind}/{identifier}/ownership - Cascade ownership to the subtree
	foldersRouter.HandleFunc("/{kind}/{identifier}/ownership",
		handleOwnershipCascade(tree, engine, s.Config)).Methods("POST")

	// GET /folders/{kind}/{identifier} - Folder subtree summary
	foldersRouter.HandleFunc("/{kind}/{identifier}",
		handleFolderSummary(tree)).Methods("GET")

	// GET /folders/{kind} - List folders of a kind
	foldersRouter.HandleFunc("/{kind}",
		handleFolderList(tree, s.Config)).Methods("GET")

	return nil
}

// handleOwnershipCascade triggers an ownership cascade from a folder. The
// request body is a form of subject -> value pairs straight from an
// ownership dialog; values that do not name a concrete ownership level are
// dropped during normalization.
func handleOwnershipCascade(tree treeSource, runner cascadeRunner, cfg *config.InkwellConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		kind := vars["kind"]
		identifier, err := url.PathUnescape(vars["identifier"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid folder identifier")
			return
		}

		folder, err := tree.Folder(kind, identifier)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(w, http.StatusNotFound, "Folder not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve folder")
			return
		}

		if err := r.ParseForm(); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		raw := make(map[string]string, len(r.PostForm))
		for field := range r.PostForm {
			raw[field] = r.PostForm.Get(field)
		}

		result := runner.Cascade(*folder, ownership.Normalize(raw))

		subject, _ := middleware.GetSubject(r.Context())
		event := audit.CascadeEvent{
			SubjectID:  subject,
			ClientIP:   clientIP(r, cfg),
			FolderID:   folder.FolderID,
			Kind:       folder.Kind,
			Outcome:    result.Outcome.String(),
			Documents:  result.DocumentCount,
			Subfolders: result.SubfolderCount,
		}
		if result.Err != nil {
			event.ErrorMessage = result.Err.Error()
		}
		audit.Log(event)

		status := http.StatusOK
		if result.Outcome == cascade.OutcomeFailed {
			// Error detail stays in the diagnostic log; the client gets a
			// generic message.
			status = http.StatusBadGateway
		}

		respondWithJSON(w, status, CascadeResponse{
			Outcome:    result.Outcome,
			Documents:  result.DocumentCount,
			Subfolders: result.SubfolderCount,
			Message:    userMessage(result),
		})
	}
}

// handleFolderSummary reports counts for a folder's subtree
func handleFolderSummary(tree treeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		kind := vars["kind"]
		identifier, err := url.PathUnescape(vars["identifier"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid folder identifier")
			return
		}

		folder, err := tree.Folder(kind, identifier)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(w, http.StatusNotFound, "Folder not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve folder")
			return
		}

		descendants, err := tree.Descendants(folder.FolderID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to enumerate folder tree")
			return
		}

		documents := 0
		for _, f := range append([]model.Folder{*folder}, descendants...) {
			ids, err := tree.Documents(f.FolderID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to list documents")
				return
			}
			documents += len(ids)
		}

		respondWithJSON(w, http.StatusOK, FolderSummaryResponse{
			FolderID:   folder.FolderID,
			Name:       folder.Name,
			Kind:       folder.Kind,
			Subfolders: len(descendants),
			Documents:  documents,
		})
	}
}

// handleFolderList lists folders of a kind. The limit query parameter is
// clamped to the configured maximum.
func handleFolderList(tree treeSource, cfg *config.InkwellConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := mux.Vars(r)["kind"]

		limit := cfg.APIFolderListLimitMax
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				respondWithError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			if parsed < limit {
				limit = parsed
			}
		}

		folders, err := tree.FoldersByKind(kind, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list folders")
			return
		}

		items := make([]FolderListItem, 0, len(folders))
		for _, f := range folders {
			item := FolderListItem{FolderID: f.FolderID, Name: f.Name, Kind: f.Kind}
			if f.ParentID != nil {
				item.ParentID = *f.ParentID
			}
			items = append(items, item)
		}

		respondWithJSON(w, http.StatusOK, items)
	}
}

func userMessage(result cascade.Result) string {
	switch result.Outcome {
	case cascade.OutcomeNoAssignment:
		return "No ownership changes to apply"
	case cascade.OutcomeNoDocuments:
		return "No documents found"
	case cascade.OutcomeApplied:
		return fmt.Sprintf("Updated %d document(s) across %d sub-folder(s)",
			result.DocumentCount, result.SubfolderCount)
	default:
		return "An error occurred while updating ownership, see the diagnostic log"
	}
}

// clientIP resolves the originating client IP, honoring X-Forwarded-For
// only when the immediate peer is a trusted proxy.
func clientIP(r *http.Request, cfg *config.InkwellConfig) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if cfg != nil && cfg.IsTrustedProxy(host) {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			return strings.TrimSpace(parts[0])
		}
	}
	return host
}
