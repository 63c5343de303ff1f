package repository

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"jar-rating/internal/domain"
)

// FilePractitionerRepository persiste practicantes en un único archivo
// JSON, compatible con el formato legado de saved_practitioners.json.
// Respaldo para despliegues sin base de datos; la similitud se resuelve
// por fuerza bruta con distancia euclidiana sobre el vector de factores.
type FilePractitionerRepository struct {
	mu   sync.Mutex
	path string
}

type savedPractitioner struct {
	domain.PractitionerRecord
	FactorVec []float32 `json:"factor_vec,omitempty"`
}

func NewFilePractitionerRepository(path string) *FilePractitionerRepository {
	return &FilePractitionerRepository{path: path}
}

func (r *FilePractitionerRepository) load() (map[string]savedPractitioner, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]savedPractitioner{}, nil
	}
	if err != nil {
		return nil, err
	}
	saved := map[string]savedPractitioner{}
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *FilePractitionerRepository) store(saved map[string]savedPractitioner) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *FilePractitionerRepository) Save(_ context.Context, record domain.PractitionerRecord, factorVec pgvector.Vector) (domain.PractitionerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved, err := r.load()
	if err != nil {
		return domain.PractitionerRecord{}, err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	saved[record.ID] = savedPractitioner{PractitionerRecord: record, FactorVec: factorVec.Slice()}
	if err := r.store(saved); err != nil {
		return domain.PractitionerRecord{}, err
	}
	return record, nil
}

func (r *FilePractitionerRepository) GetByID(_ context.Context, id string) (domain.PractitionerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved, err := r.load()
	if err != nil {
		return domain.PractitionerRecord{}, err
	}
	entry, ok := saved[id]
	if !ok {
		return domain.PractitionerRecord{}, ErrNotFound
	}
	return entry.PractitionerRecord, nil
}

func (r *FilePractitionerRepository) List(_ context.Context) ([]domain.PractitionerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved, err := r.load()
	if err != nil {
		return nil, err
	}
	records := make([]domain.PractitionerRecord, 0, len(saved))
	for _, entry := range saved {
		records = append(records, entry.PractitionerRecord)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (r *FilePractitionerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := saved[id]; !ok {
		return ErrNotFound
	}
	delete(saved, id)
	return r.store(saved)
}

func (r *FilePractitionerRepository) ListSimilar(_ context.Context, id string, k int) ([]domain.PractitionerRecord, error) {
	if k <= 0 {
		k = 5
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	saved, err := r.load()
	if err != nil {
		return nil, err
	}
	ref, ok := saved[id]
	if !ok {
		return nil, ErrNotFound
	}

	type scored struct {
		record   domain.PractitionerRecord
		distance float64
	}
	var candidates []scored
	for candidateID, entry := range saved {
		if candidateID == id {
			continue
		}
		candidates = append(candidates, scored{
			record:   entry.PractitionerRecord,
			distance: euclideanDistance(ref.FactorVec, entry.FactorVec),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	records := make([]domain.PractitionerRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, c.record)
	}
	return records, nil
}

func euclideanDistance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	sum := 0.0
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
