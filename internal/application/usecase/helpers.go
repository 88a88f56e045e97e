package usecase

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
)

// today fecha de calendario de now en loc.
func today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format("2006-01-02")
}

// blobSize tamaño decodificado de un contenido base64, admitiendo el prefijo
// data URL ("data:application/pdf;base64,...").
func blobSize(data string) (int, error) {
	if i := strings.Index(data, ","); strings.HasPrefix(data, "data:") && i >= 0 {
		data = data[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

// sizeLabel tamaño en KB con dos decimales, como se muestra en los listados.
func sizeLabel(n int) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

func notFoundIfNil[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}
