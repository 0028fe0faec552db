package v1

import (
	"net/http"

	"github.com/vmunix/macflix/internal/media"
)

// verify checks that every local locator in the catalog names a readable
// file. Remote locators are counted but not contacted.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	rep := media.Audit(s.deps.Catalog.Current(), s.deps.Delivery.CheckLocal)
	if len(rep.Problems) > 0 {
		s.logger.Warn("verify found unservable locators", "problems", len(rep.Problems), "checked", rep.Checked)
	}
	writeJSON(w, http.StatusOK, rep)
}
