package conv

import (
	"sort"
	"time"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/frames"
)

// Transforms flattens the raw frame-tree snapshot into stamped transforms
// with every frame name prefixed. The robot reports a body-rooted tree; the
// edge for the preferred odometry estimator is inverted so that the chosen
// odometry frame parents the body in the published tree, while the other
// estimator stays a child of the body. Edges are emitted in child-name order
// so repeated translations of the same snapshot are identical.
func Transforms(ks *api.KinematicState, skew time.Duration, prefix string, res frames.Resolution) ([]domain.FrameTransform, error) {
	if ks == nil || ks.TransformsSnapshot == nil {
		return nil, nil
	}

	preferredBase := frames.BaseOdom
	if res.PreferVision {
		preferredBase = frames.BaseVision
	}

	edges := ks.TransformsSnapshot.ChildToParentEdgeMap
	children := make([]string, 0, len(edges))
	for child := range edges {
		children = append(children, child)
	}
	sort.Strings(children)

	ts := localTimestamp(ks.AcquisitionTimestamp, skew)
	out := make([]domain.FrameTransform, 0, len(children))
	for _, child := range children {
		edge := edges[child]
		if edge.ParentFrameName == "" {
			// Tree root; no transform to emit.
			continue
		}
		if edge.ParentTformChild == nil {
			return nil, decodeErrf("transform", "edge %q has no pose", child)
		}

		if child == preferredBase && edge.ParentFrameName == frames.BaseBody {
			out = append(out, domain.FrameTransform{
				Timestamp:   ts,
				ParentFrame: prefix + child,
				ChildFrame:  prefix + edge.ParentFrameName,
				Transform:   invertPose(pose(edge.ParentTformChild)),
			})
			continue
		}

		out = append(out, domain.FrameTransform{
			Timestamp:   ts,
			ParentFrame: prefix + edge.ParentFrameName,
			ChildFrame:  prefix + child,
			Transform:   pose(edge.ParentTformChild),
		})
	}
	return out, nil
}
