// internal/controller/segmentation_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/leadsegment-backend/internal/errors"
	"github.com/unclebandit/leadsegment-backend/internal/model"
	"github.com/unclebandit/leadsegment-backend/internal/registry"
	"github.com/unclebandit/leadsegment-backend/internal/service"
	"github.com/unclebandit/leadsegment-backend/internal/store"
	"github.com/unclebandit/leadsegment-backend/internal/unify"
)

const maxUploadBytes = 64 << 20

// SegmentationController exposes the pipeline over HTTP: list clients,
// inspect a profile, run a segmentation, download the per-group files.
type SegmentationController struct {
	Registry *registry.Registry
	Service  *service.PipelineService
	Runs     *store.RunStore
}

// Routes mounts the controller on a chi router.
func (c *SegmentationController) Routes(r chi.Router) {
	r.Get("/clients", c.ListClients)
	r.Get("/clients/{id}", c.GetProfile)
	r.Post("/clients/{id}/runs", c.RunSegmentation)
	r.Get("/runs/{runID}/files/{name}", c.DownloadArtifact)
}

// ListClients returns the known client ids in stable order.
func (c *SegmentationController) ListClients(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"clients": c.Registry.ListClientIDs(),
	})
}

// GetProfile returns one client's configuration. Unknown ids return the
// empty profile, mirroring the registry contract.
func (c *SegmentationController) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	profile := c.Registry.ProfileFor(id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// RunSegmentation accepts a multipart upload (field "files", repeated)
// plus form fields reference_date (YYYY-MM-DD), dedupe ("true") and an
// optional profile JSON override, runs the pipeline, stores the result
// for download and responds with the run summary.
func (c *SegmentationController) RunSegmentation(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart body: "+err.Error(), http.StatusBadRequest)
		return
	}

	reference := time.Now()
	if raw := r.FormValue("reference_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid reference_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		reference = parsed
	}

	var profileOverride *model.ClientProfile
	if raw := r.FormValue("profile"); raw != "" {
		var p model.ClientProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			http.Error(w, "invalid profile override: "+err.Error(), http.StatusBadRequest)
			return
		}
		profileOverride = &p
	}

	var inputs []unify.Input
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			http.Error(w, "cannot read upload "+header.Filename, http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			http.Error(w, "cannot read upload "+header.Filename, http.StatusBadRequest)
			return
		}
		inputs = append(inputs, unify.Input{Name: header.Filename, Data: data})
	}
	if len(inputs) == 0 {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	result, err := c.Service.Run(service.RunRequest{
		ClientID:  clientID,
		Reference: reference,
		Inputs:    inputs,
		Dedupe:    r.FormValue("dedupe") == "true",
		Profile:   profileOverride,
	})
	if err != nil {
		var noData *appErrors.NoDataError
		if errors.As(err, &noData) {
			// Surface the skipped-table reasons so the operator can see
			// why nothing was usable.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":          err.Error(),
				"skipped_tables": result.SkippedTables,
			})
			return
		}
		log.Println("segmentation run failed:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	runID := c.Runs.Save(result)

	files := make([]map[string]interface{}, 0, len(result.Groups))
	for _, g := range result.Groups {
		entry := map[string]interface{}{
			"name":    g.Name,
			"records": g.Records,
		}
		if g.FileName != "" {
			entry["file_name"] = g.FileName
			entry["url"] = fmt.Sprintf("/runs/%s/files/%s", runID, url.PathEscape(g.FileName))
		}
		files = append(files, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id":          runID,
		"client_id":       result.ClientID,
		"reference":       result.Reference.Format("2006-01-02"),
		"total_records":   result.TotalRecords,
		"invalid_dates":   result.InvalidDates,
		"skipped_tables":  result.SkippedTables,
		"missing_columns": result.MissingColumns,
		"groups":          files,
	})
}

// DownloadArtifact streams one generated spreadsheet.
func (c *SegmentationController) DownloadArtifact(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	result := c.Runs.Get(runID)
	if result == nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	artifact := result.Artifact(name)
	if artifact == nil {
		http.Error(w, "file not found in run", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	w.Write(artifact.Content)
}
