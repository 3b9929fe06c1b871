package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	beamline "Girder/internal/calc/premium/beamline"
	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Optimizer *beamline.Optimizer
}

// BeamLine imports a beam line from the first sheet of an uploaded XLSX
// and runs the line optimizer over it with unified diameters.
func (h *Handler) BeamLine(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	input, err := ParseWorkbook(f)
	if err != nil {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	opt := h.Optimizer
	if opt == nil {
		opt = beamline.NewOptimizer(nil)
	}
	res := opt.Optimize(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ParseWorkbook reads beam rows from the first sheet of an open workbook.
// Expected columns: beam_id, b_mm, D_mm, span_mm, mu_knm, vu_kn, optional
// fck, fy, cover. The first row is a header; rows that fail to parse are
// skipped. Unification is on by default.
func ParseWorkbook(f *excelize.File) (beamline.Input, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return beamline.Input{}, err
	}
	if len(rows) < 2 {
		return beamline.Input{}, fmt.Errorf("workbook has no beam rows")
	}

	input := beamline.Input{UnifyDiameters: true}
	for i := 1; i < len(rows); i++ {
		beam, fck, fy, cover, err := parseBeamRow(rows[i])
		if err != nil {
			continue
		}
		if fck > 0 {
			input.FckMPa = fck
		}
		if fy > 0 {
			input.FyMPa = fy
		}
		if cover > 0 {
			input.CoverMM = cover
		}
		input.Beams = append(input.Beams, beam)
	}
	return input, nil
}

func parseBeamRow(row []string) (beamline.Beam, float64, float64, float64, error) {
	if len(row) < 6 {
		return beamline.Beam{}, 0, 0, 0, fmt.Errorf("bad row")
	}
	b := beamline.Beam{BeamID: row[0]}
	var err error
	if b.BMM, err = toFloat(row[1]); err != nil {
		return beamline.Beam{}, 0, 0, 0, err
	}
	if b.DMM, err = toFloat(row[2]); err != nil {
		return beamline.Beam{}, 0, 0, 0, err
	}
	if b.SpanMM, err = toFloat(row[3]); err != nil {
		return beamline.Beam{}, 0, 0, 0, err
	}
	if b.MuKNm, err = toFloat(row[4]); err != nil {
		return beamline.Beam{}, 0, 0, 0, err
	}
	if b.VuKN, err = toFloat(row[5]); err != nil {
		return beamline.Beam{}, 0, 0, 0, err
	}
	fck, fy, cover := 0.0, 0.0, 0.0
	if len(row) > 6 && row[6] != "" {
		fck, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		fy, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		cover, _ = toFloat(row[8])
	}
	return b, fck, fy, cover, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
