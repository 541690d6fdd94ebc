package manifest

import (
	"strconv"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/layout"
)

// Build validates the spec and constructs the layout tree it describes.
// All configuration errors surface as INVALID_MANIFEST (or more specific
// validation codes) before any layout node is touched, so the fail-fast
// panics of pkg/layout never fire for manifest input.
func (s *Spec) Build() (layout.Node, error) {
	return s.build("root")
}

// build constructs the node at the given tree path. The path only exists
// to make validation errors point at the offending node.
func (s *Spec) build(path string) (layout.Node, error) {
	if err := errors.ValidateLabel(s.Label); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s: invalid label", path)
	}

	intrinsic, err := s.intrinsicSize(path)
	if err != nil {
		return nil, err
	}
	padding, err := s.padding(path)
	if err != nil {
		return nil, err
	}
	mainAlign, err := parseAlignment(s.MainAlign, path, "main_align")
	if err != nil {
		return nil, err
	}
	crossAlign, err := parseAlignment(s.CrossAlign, path, "cross_align")
	if err != nil {
		return nil, err
	}
	if s.Spacing < 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"%s: spacing must be non-negative, got %v", path, s.Spacing)
	}

	switch s.Kind {
	case KindLeaf:
		if s.Child != nil || len(s.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: leaf nodes cannot have children", path)
		}
		if s.Padding != nil || s.Spacing != 0 || s.MainAlign != "" || s.CrossAlign != "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"%s: leaf nodes take no padding, spacing or alignment", path)
		}
		return layout.NewLeaf().
			WithLabel(s.Label).
			WithIntrinsicSize(intrinsic), nil

	case KindBox:
		if len(s.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"%s: box nodes take a single child, not children", path)
		}
		if s.Spacing != 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: box nodes take no spacing", path)
		}
		var child layout.Node
		if s.Child != nil {
			child, err = s.Child.build(path + ".child")
			if err != nil {
				return nil, err
			}
		}
		return layout.NewBox(child).
			WithLabel(s.Label).
			WithIntrinsicSize(intrinsic).
			WithPadding(padding).
			WithMainAlignment(mainAlign).
			WithCrossAlignment(crossAlign), nil

	case KindHorizontal:
		children, err := s.buildChildren(path)
		if err != nil {
			return nil, err
		}
		return layout.NewHorizontal().
			WithLabel(s.Label).
			WithIntrinsicSize(intrinsic).
			WithPadding(padding).
			WithSpacing(s.Spacing).
			WithMainAlignment(mainAlign).
			WithCrossAlignment(crossAlign).
			AppendChildren(children...), nil

	case KindVertical:
		children, err := s.buildChildren(path)
		if err != nil {
			return nil, err
		}
		return layout.NewVertical().
			WithLabel(s.Label).
			WithIntrinsicSize(intrinsic).
			WithPadding(padding).
			WithSpacing(s.Spacing).
			WithMainAlignment(mainAlign).
			WithCrossAlignment(crossAlign).
			AppendChildren(children...), nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: missing node kind", path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: unknown node kind %q", path, s.Kind)
	}
}

func (s *Spec) buildChildren(path string) ([]layout.Node, error) {
	if s.Child != nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"%s: %s nodes take children, not a single child", path, s.Kind)
	}
	children := make([]layout.Node, 0, len(s.Children))
	for i := range s.Children {
		child, err := s.Children[i].build(childPath(path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func (s *Spec) intrinsicSize(path string) (layout.IntrinsicSize, error) {
	width, err := s.Width.sizing(path, "width")
	if err != nil {
		return layout.IntrinsicSize{}, err
	}
	height, err := s.Height.sizing(path, "height")
	if err != nil {
		return layout.IntrinsicSize{}, err
	}
	return layout.IntrinsicSize{Width: width, Height: height}, nil
}

func (a *Axis) sizing(path, axis string) (layout.Sizing, error) {
	if a == nil {
		return layout.Shrink(), nil
	}
	switch a.Mode {
	case "", "shrink":
		return layout.Shrink(), nil
	case "fixed":
		if a.Value < 0 {
			return layout.Sizing{}, errors.New(errors.ErrCodeInvalidSizing,
				"%s: %s: fixed value must be non-negative, got %v", path, axis, a.Value)
		}
		return layout.Fixed(a.Value), nil
	case "flex":
		factor := a.Factor
		if factor == 0 {
			factor = 1
		}
		if factor < 1 || factor > 255 {
			return layout.Sizing{}, errors.New(errors.ErrCodeInvalidSizing,
				"%s: %s: flex factor must be between 1 and 255, got %d", path, axis, a.Factor)
		}
		return layout.Flex(uint8(factor)), nil
	default:
		return layout.Sizing{}, errors.New(errors.ErrCodeInvalidSizing,
			"%s: %s: unknown sizing mode %q", path, axis, a.Mode)
	}
}

func (s *Spec) padding(path string) (layout.Padding, error) {
	if s.Padding == nil {
		return layout.Padding{}, nil
	}
	p := s.Padding
	if p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		return layout.Padding{}, errors.New(errors.ErrCodeInvalidManifest,
			"%s: padding sides must be non-negative", path)
	}
	return layout.NewPadding(p.Left, p.Right, p.Top, p.Bottom), nil
}

func parseAlignment(value, path, field string) (layout.Alignment, error) {
	switch value {
	case "", "start":
		return layout.AlignStart, nil
	case "center":
		return layout.AlignCenter, nil
	case "end":
		return layout.AlignEnd, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidAlignment,
			"%s: %s: unknown alignment %q (want start, center or end)", path, field, value)
	}
}

func childPath(path string, index int) string {
	return path + ".children[" + strconv.Itoa(index) + "]"
}
