package index

import (
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Lookup returns the row for id from the document at path.
func (s *Synchronizer) Lookup(path string, id uint) (types.Row, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return types.Row{}, wrapReadError(err, path)
	}
	for _, r := range s.Rows(text) {
		if r.ProblemID == id {
			return r, nil
		}
	}
	return types.Row{}, types.ErrNotFound
}

// SetStar marks or unmarks the row for id as a favorite. The rest of the
// table is re-rendered from its parsed rows, so malformed lines inside the
// table are dropped just as on a sync.
func (s *Synchronizer) SetStar(path string, id uint, starred bool) (Result, error) {
	res, err := s.rewriteFile(path, func(lines []string) ([]string, error) {
		region := Locate(lines, s.header[0])
		if region.Absent() {
			return nil, types.ErrTableAbsent
		}
		rows := ParseRows(lines, region)
		i := indexOf(rows, id)
		if i < 0 {
			return nil, types.ErrNotFound
		}
		if rows[i].Starred == starred {
			return lines, nil
		}
		rows[i].Starred = starred
		return Render(lines, region, rows, s.header), nil
	})
	if err != nil {
		return res, err
	}
	s.logger.Info("index star updated", "path", path, "problem_id", id, "starred", starred, "outcome", res.Outcome.String())
	return res, nil
}
