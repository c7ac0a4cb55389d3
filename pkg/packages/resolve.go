package packages

import (
	"context"
	"strings"

	"github.com/swiftscout/swiftscout/pkg/errors"
	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
)

// Resolve turns a user-supplied package reference into an owner/repo pair.
// "owner/repo" references split directly; a bare name is resolved through
// an index search, preferring an exact repository-name match over the
// top-ranked hit.
func (s *Service) Resolve(ctx context.Context, ref string) (owner, repo string, err error) {
	ref = strings.TrimSpace(ref)
	if err := errors.ValidatePackageName(ref); err != nil {
		return "", "", err
	}

	if before, after, found := strings.Cut(ref, "/"); found {
		if err := errors.ValidateOwnerRepo(before, after); err != nil {
			return "", "", err
		}
		return before, after, nil
	}

	results, err := s.index.Search(ctx, ref, spi.SearchFilters{}, false)
	if err != nil {
		return "", "", mapUpstreamErr(err, "resolve %q", ref)
	}
	if len(results) == 0 {
		return "", "", errors.New(errors.ErrCodePackageNotFound, "no package matches %q", ref)
	}

	for _, r := range results {
		if strings.EqualFold(r.Repository, ref) {
			return r.Owner, r.Repository, nil
		}
	}
	return results[0].Owner, results[0].Repository, nil
}
