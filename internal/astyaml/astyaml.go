// Package astyaml loads a program description from YAML into internal/ast
// nodes. It exists because the actual horn-clause surface syntax's parser is
// out of scope for this pass (§1): this format is a deliberately simple
// stand-in used by the CLI and by golden fixtures, not a claim about what
// the real surface syntax looks like.
package astyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hornlang/hornc/internal/ast"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/paramkind"
	"github.com/hornlang/hornc/internal/token"
)

// LoadProgram parses a YAML document into an *ast.Program.
func LoadProgram(data []byte) (*ast.Program, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("astyaml: %w", err)
	}
	if len(root.Content) == 0 {
		return &ast.Program{}, nil
	}
	doc := root.Content[0]
	fields, err := mapOf(doc)
	if err != nil {
		return nil, fmt.Errorf("astyaml: program: %w", err)
	}
	itemsNode, ok := fields["items"]
	if !ok {
		return &ast.Program{}, nil
	}
	if itemsNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("astyaml: %s: items must be a sequence", pos(itemsNode))
	}
	items := make([]ast.Item, len(itemsNode.Content))
	for i, n := range itemsNode.Content {
		item, err := decodeItem(n)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return &ast.Program{Items: items}, nil
}

func pos(n *yaml.Node) token.Position {
	return token.Position{Line: n.Line, Column: n.Column}
}

func mapOf(n *yaml.Node) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping", pos(n))
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = n.Content[i+1]
	}
	return out, nil
}

func field(fields map[string]*yaml.Node, name string) (*yaml.Node, bool) {
	n, ok := fields[name]
	return n, ok
}

func stringField(fields map[string]*yaml.Node, name string) (string, error) {
	n, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("missing field %q", name)
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return "", fmt.Errorf("field %q: %w", name, err)
	}
	return s, nil
}

func identField(fields map[string]*yaml.Node, name string) (ident.ID, error) {
	s, err := stringField(fields, name)
	if err != nil {
		return 0, err
	}
	return ident.Intern(s), nil
}

func boolField(fields map[string]*yaml.Node, name string) bool {
	n, ok := fields[name]
	if !ok {
		return false
	}
	var b bool
	_ = n.Decode(&b)
	return b
}

func sequenceField(fields map[string]*yaml.Node, name string) []*yaml.Node {
	n, ok := fields[name]
	if !ok || n.Kind != yaml.SequenceNode {
		return nil
	}
	return n.Content
}

func decodeItem(n *yaml.Node) (ast.Item, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("item at %s: %w", pos(n), err)
	}
	switch kind {
	case "struct":
		return decodeStructDefn(n, fields)
	case "trait":
		return decodeTraitDefn(n, fields)
	case "impl":
		return decodeImpl(n, fields)
	case "clause":
		return decodeClause(n, fields)
	default:
		return nil, fmt.Errorf("%s: unknown item kind %q", pos(n), kind)
	}
}

func decodeStructDefn(n *yaml.Node, fields map[string]*yaml.Node) (*ast.StructDefn, error) {
	name, err := identField(fields, "name")
	if err != nil {
		return nil, fmt.Errorf("struct at %s: %w", pos(n), err)
	}
	params, err := decodeParameterKinds(sequenceField(fields, "params"))
	if err != nil {
		return nil, err
	}
	var fieldList []ast.Field
	for _, fn := range sequenceField(fields, "fields") {
		ff, err := mapOf(fn)
		if err != nil {
			return nil, err
		}
		fname, err := identField(ff, "name")
		if err != nil {
			return nil, err
		}
		tyNode, ok := field(ff, "type")
		if !ok {
			return nil, fmt.Errorf("%s: field missing type", pos(fn))
		}
		ty, err := decodeTy(tyNode)
		if err != nil {
			return nil, err
		}
		fieldList = append(fieldList, ast.Field{Name: fname, Ty: ty})
	}
	where, err := decodeQuantifiedWhereClauses(sequenceField(fields, "where"))
	if err != nil {
		return nil, err
	}
	flagsNode, _ := field(fields, "flags")
	flags := ast.StructFlags{}
	if flagsNode != nil {
		ff, err := mapOf(flagsNode)
		if err != nil {
			return nil, err
		}
		flags.External = boolField(ff, "external")
		flags.Fundamental = boolField(ff, "fundamental")
	}
	return &ast.StructDefn{Token: pos(n), Name: name, ParameterKinds: params, Fields: fieldList, WhereClauses: where, Flags: flags}, nil
}

func decodeTraitDefn(n *yaml.Node, fields map[string]*yaml.Node) (*ast.TraitDefn, error) {
	name, err := identField(fields, "name")
	if err != nil {
		return nil, fmt.Errorf("trait at %s: %w", pos(n), err)
	}
	params, err := decodeParameterKinds(sequenceField(fields, "params"))
	if err != nil {
		return nil, err
	}
	where, err := decodeQuantifiedWhereClauses(sequenceField(fields, "where"))
	if err != nil {
		return nil, err
	}
	flagsNode, _ := field(fields, "flags")
	flags := ast.TraitFlags{}
	if flagsNode != nil {
		ff, err := mapOf(flagsNode)
		if err != nil {
			return nil, err
		}
		flags.Auto = boolField(ff, "auto")
		flags.Marker = boolField(ff, "marker")
		flags.External = boolField(ff, "external")
		flags.Deref = boolField(ff, "deref")
	}
	var assocTys []*ast.AssocTyDefn
	for _, an := range sequenceField(fields, "assoc_types") {
		af, err := mapOf(an)
		if err != nil {
			return nil, err
		}
		aname, err := identField(af, "name")
		if err != nil {
			return nil, err
		}
		aparams, err := decodeParameterKinds(sequenceField(af, "params"))
		if err != nil {
			return nil, err
		}
		bounds, err := decodeInlineBounds(sequenceField(af, "bounds"))
		if err != nil {
			return nil, err
		}
		awhere, err := decodeQuantifiedWhereClauses(sequenceField(af, "where"))
		if err != nil {
			return nil, err
		}
		assocTys = append(assocTys, &ast.AssocTyDefn{
			Token: pos(an), Name: aname, ParameterKinds: aparams, Bounds: bounds, WhereClauses: awhere,
		})
	}
	return &ast.TraitDefn{Token: pos(n), Name: name, ParameterKinds: params, WhereClauses: where, Flags: flags, AssocTyDefns: assocTys}, nil
}

func decodeImpl(n *yaml.Node, fields map[string]*yaml.Node) (*ast.Impl, error) {
	params, err := decodeParameterKinds(sequenceField(fields, "params"))
	if err != nil {
		return nil, err
	}
	trNode, ok := field(fields, "trait_ref")
	if !ok {
		return nil, fmt.Errorf("%s: impl missing trait_ref", pos(n))
	}
	tr, err := decodeTraitRef(trNode)
	if err != nil {
		return nil, err
	}
	positive := true
	if pn, ok := field(fields, "positive"); ok {
		if err := pn.Decode(&positive); err != nil {
			return nil, fmt.Errorf("%s: impl positive: %w", pos(n), err)
		}
	}
	polarized := ast.PolarizedTraitRef{Positive: positive, TraitRef: tr}
	where, err := decodeQuantifiedWhereClauses(sequenceField(fields, "where"))
	if err != nil {
		return nil, err
	}
	var values []*ast.AssocTyValue
	for _, vn := range sequenceField(fields, "assoc_values") {
		vf, err := mapOf(vn)
		if err != nil {
			return nil, err
		}
		vname, err := identField(vf, "name")
		if err != nil {
			return nil, err
		}
		vparams, err := decodeParameterKinds(sequenceField(vf, "params"))
		if err != nil {
			return nil, err
		}
		valNode, ok := field(vf, "value")
		if !ok {
			return nil, fmt.Errorf("%s: assoc value missing value", pos(vn))
		}
		value, err := decodeTy(valNode)
		if err != nil {
			return nil, err
		}
		values = append(values, &ast.AssocTyValue{Token: pos(vn), Name: vname, ParameterKinds: vparams, Value: value})
	}
	return &ast.Impl{Token: pos(n), ParameterKinds: params, TraitRef: polarized, WhereClauses: where, AssocTyValues: values}, nil
}

func decodeClause(n *yaml.Node, fields map[string]*yaml.Node) (*ast.Clause, error) {
	params, err := decodeParameterKinds(sequenceField(fields, "params"))
	if err != nil {
		return nil, err
	}
	consNode, ok := field(fields, "consequence")
	if !ok {
		return nil, fmt.Errorf("%s: clause missing consequence", pos(n))
	}
	consequence, err := decodeDomainGoal(consNode)
	if err != nil {
		return nil, err
	}
	var conditions []ast.Goal
	for _, cn := range sequenceField(fields, "conditions") {
		g, err := decodeGoal(cn)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, g)
	}
	return &ast.Clause{Token: pos(n), ParameterKinds: params, Consequence: consequence, Conditions: conditions}, nil
}

func decodeParameterKinds(nodes []*yaml.Node) ([]ast.ParameterKind, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]ast.ParameterKind, len(nodes))
	for i, n := range nodes {
		f, err := mapOf(n)
		if err != nil {
			return nil, err
		}
		name, err := identField(f, "name")
		if err != nil {
			return nil, err
		}
		kind, err := stringField(f, "kind")
		if err != nil {
			return nil, err
		}
		switch kind {
		case "ty":
			out[i] = paramkind.Ty(name)
		case "lifetime":
			out[i] = paramkind.Lifetime(name)
		default:
			return nil, fmt.Errorf("%s: unknown parameter kind %q", pos(n), kind)
		}
	}
	return out, nil
}

func decodeTy(n *yaml.Node) (ast.Ty, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("type at %s: %w", pos(n), err)
	}
	switch kind {
	case "id":
		name, err := identField(fields, "name")
		if err != nil {
			return nil, err
		}
		return &ast.IdTy{Token: pos(n), Name: name}, nil
	case "apply":
		name, err := identField(fields, "name")
		if err != nil {
			return nil, err
		}
		args, err := decodeParameters(sequenceField(fields, "args"))
		if err != nil {
			return nil, err
		}
		return &ast.ApplyTy{Token: pos(n), Name: name, Args: args}, nil
	case "projection":
		trNode, ok := field(fields, "trait_ref")
		if !ok {
			return nil, fmt.Errorf("%s: projection missing trait_ref", pos(n))
		}
		tr, err := decodeTraitRef(trNode)
		if err != nil {
			return nil, err
		}
		name, err := identField(fields, "name")
		if err != nil {
			return nil, err
		}
		args, err := decodeParameters(sequenceField(fields, "args"))
		if err != nil {
			return nil, err
		}
		return &ast.ProjectionTyNode{Token: pos(n), TraitRef: tr, Name: name, Args: args}, nil
	case "unselected_projection":
		name, err := identField(fields, "name")
		if err != nil {
			return nil, err
		}
		args, err := decodeParameters(sequenceField(fields, "args"))
		if err != nil {
			return nil, err
		}
		return &ast.UnselectedProjectionTyNode{Token: pos(n), Name: name, Args: args}, nil
	case "forall":
		var names []ident.ID
		for _, ln := range sequenceField(fields, "lifetimes") {
			var s string
			if err := ln.Decode(&s); err != nil {
				return nil, err
			}
			names = append(names, ident.Intern(s))
		}
		innerNode, ok := field(fields, "ty")
		if !ok {
			return nil, fmt.Errorf("%s: forall missing ty", pos(n))
		}
		inner, err := decodeTy(innerNode)
		if err != nil {
			return nil, err
		}
		return &ast.ForAllTy{Token: pos(n), LifetimeNames: names, Ty: inner}, nil
	default:
		return nil, fmt.Errorf("%s: unknown type kind %q", pos(n), kind)
	}
}

func decodeLifetime(n *yaml.Node) (ast.Lifetime, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	name, err := identField(fields, "name")
	if err != nil {
		return nil, fmt.Errorf("lifetime at %s: %w", pos(n), err)
	}
	return &ast.IdLifetime{Token: pos(n), Name: name}, nil
}

func decodeParameter(n *yaml.Node) (ast.Parameter, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("parameter at %s: %w", pos(n), err)
	}
	switch kind {
	case "ty":
		tyNode, ok := field(fields, "type")
		if !ok {
			return nil, fmt.Errorf("%s: ty parameter missing type", pos(n))
		}
		ty, err := decodeTy(tyNode)
		if err != nil {
			return nil, err
		}
		return ast.TyParameter{Ty: ty}, nil
	case "lifetime":
		ltNode, ok := field(fields, "lifetime")
		if !ok {
			return nil, fmt.Errorf("%s: lifetime parameter missing lifetime", pos(n))
		}
		lt, err := decodeLifetime(ltNode)
		if err != nil {
			return nil, err
		}
		return ast.LifetimeParameter{Lifetime: lt}, nil
	default:
		return nil, fmt.Errorf("%s: unknown parameter kind %q", pos(n), kind)
	}
}

func decodeParameters(nodes []*yaml.Node) ([]ast.Parameter, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]ast.Parameter, len(nodes))
	for i, n := range nodes {
		p, err := decodeParameter(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeTraitRef(n *yaml.Node) (*ast.TraitRef, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	name, err := identField(fields, "trait")
	if err != nil {
		return nil, fmt.Errorf("trait ref at %s: %w", pos(n), err)
	}
	args, err := decodeParameters(sequenceField(fields, "args"))
	if err != nil {
		return nil, err
	}
	return &ast.TraitRef{Token: pos(n), TraitName: name, Args: args}, nil
}

func decodeWhereClause(n *yaml.Node) (ast.WhereClause, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("where clause at %s: %w", pos(n), err)
	}
	switch kind {
	case "implemented":
		trNode, ok := field(fields, "trait_ref")
		if !ok {
			return nil, fmt.Errorf("%s: implemented missing trait_ref", pos(n))
		}
		tr, err := decodeTraitRef(trNode)
		if err != nil {
			return nil, err
		}
		return &ast.Implemented{Token: pos(n), TraitRef: tr}, nil
	case "projection_eq":
		projNode, ok := field(fields, "projection")
		if !ok {
			return nil, fmt.Errorf("%s: projection_eq missing projection", pos(n))
		}
		proj, err := decodeTy(projNode)
		if err != nil {
			return nil, err
		}
		projTy, ok := proj.(*ast.ProjectionTyNode)
		if !ok {
			return nil, fmt.Errorf("%s: projection_eq's projection must be a selected projection", pos(projNode))
		}
		tyNode, ok := field(fields, "ty")
		if !ok {
			return nil, fmt.Errorf("%s: projection_eq missing ty", pos(n))
		}
		ty, err := decodeTy(tyNode)
		if err != nil {
			return nil, err
		}
		return &ast.ProjectionEq{Token: pos(n), Projection: projTy, Ty: ty}, nil
	default:
		return nil, fmt.Errorf("%s: unknown where clause kind %q", pos(n), kind)
	}
}

func decodeQuantifiedWhereClauses(nodes []*yaml.Node) ([]ast.QuantifiedWhereClause, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]ast.QuantifiedWhereClause, len(nodes))
	for i, n := range nodes {
		fields, err := mapOf(n)
		if err != nil {
			return nil, err
		}
		params, err := decodeParameterKinds(sequenceField(fields, "params"))
		if err != nil {
			return nil, err
		}
		clauseNode, ok := field(fields, "clause")
		if !ok {
			// allow a bare where-clause with no `forall` wrapper.
			wc, err := decodeWhereClause(n)
			if err != nil {
				return nil, err
			}
			out[i] = ast.QuantifiedWhereClause{ParameterKinds: params, WhereClause: wc}
			continue
		}
		wc, err := decodeWhereClause(clauseNode)
		if err != nil {
			return nil, err
		}
		out[i] = ast.QuantifiedWhereClause{ParameterKinds: params, WhereClause: wc}
	}
	return out, nil
}

func decodeInlineBound(n *yaml.Node) (ast.InlineBound, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("inline bound at %s: %w", pos(n), err)
	}
	switch kind {
	case "trait":
		name, err := identField(fields, "trait")
		if err != nil {
			return nil, err
		}
		args, err := decodeParameters(sequenceField(fields, "args"))
		if err != nil {
			return nil, err
		}
		return &ast.TraitBound{Token: pos(n), TraitName: name, ArgsNoSelf: args}, nil
	case "projection_eq":
		traitName, err := identField(fields, "trait")
		if err != nil {
			return nil, err
		}
		traitArgs, err := decodeParameters(sequenceField(fields, "trait_args"))
		if err != nil {
			return nil, err
		}
		name, err := identField(fields, "name")
		if err != nil {
			return nil, err
		}
		args, err := decodeParameters(sequenceField(fields, "args"))
		if err != nil {
			return nil, err
		}
		valueNode, ok := field(fields, "value")
		if !ok {
			return nil, fmt.Errorf("%s: projection_eq bound missing value", pos(n))
		}
		value, err := decodeTy(valueNode)
		if err != nil {
			return nil, err
		}
		return &ast.ProjectionEqBound{
			Token:      pos(n),
			TraitBound: &ast.TraitBound{Token: pos(n), TraitName: traitName, ArgsNoSelf: traitArgs},
			Name:       name,
			Args:       args,
			Value:      value,
		}, nil
	default:
		return nil, fmt.Errorf("%s: unknown inline bound kind %q", pos(n), kind)
	}
}

func decodeInlineBounds(nodes []*yaml.Node) ([]ast.InlineBound, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]ast.InlineBound, len(nodes))
	for i, n := range nodes {
		b, err := decodeInlineBound(n)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func decodeDomainGoal(n *yaml.Node) (ast.DomainGoal, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("domain goal at %s: %w", pos(n), err)
	}
	switch kind {
	case "holds":
		wcNode, ok := field(fields, "where_clause")
		if !ok {
			return nil, fmt.Errorf("%s: holds missing where_clause", pos(n))
		}
		wc, err := decodeWhereClause(wcNode)
		if err != nil {
			return nil, err
		}
		return &ast.Holds{Token: pos(n), WhereClause: wc}, nil
	case "normalize":
		projNode, ok := field(fields, "projection")
		if !ok {
			return nil, fmt.Errorf("%s: normalize missing projection", pos(n))
		}
		proj, err := decodeTy(projNode)
		if err != nil {
			return nil, err
		}
		projTy, ok := proj.(*ast.ProjectionTyNode)
		if !ok {
			return nil, fmt.Errorf("%s: normalize's projection must be a selected projection", pos(projNode))
		}
		tyNode, ok := field(fields, "ty")
		if !ok {
			return nil, fmt.Errorf("%s: normalize missing ty", pos(n))
		}
		ty, err := decodeTy(tyNode)
		if err != nil {
			return nil, err
		}
		return &ast.Normalize{Token: pos(n), Projection: projTy, Ty: ty}, nil
	case "ty_well_formed":
		ty, err := decodeTyField(fields, n, "ty")
		if err != nil {
			return nil, err
		}
		return &ast.TyWellFormed{Token: pos(n), Ty: ty}, nil
	case "trait_ref_well_formed":
		tr, err := decodeTraitRefField(fields, n)
		if err != nil {
			return nil, err
		}
		return &ast.TraitRefWellFormed{Token: pos(n), TraitRef: tr}, nil
	case "ty_from_env":
		ty, err := decodeTyField(fields, n, "ty")
		if err != nil {
			return nil, err
		}
		return &ast.TyFromEnv{Token: pos(n), Ty: ty}, nil
	case "trait_ref_from_env":
		tr, err := decodeTraitRefField(fields, n)
		if err != nil {
			return nil, err
		}
		return &ast.TraitRefFromEnv{Token: pos(n), TraitRef: tr}, nil
	case "trait_in_scope":
		name, err := identField(fields, "trait")
		if err != nil {
			return nil, err
		}
		return &ast.TraitInScope{Token: pos(n), TraitName: name}, nil
	case "derefs":
		source, err := decodeTyField(fields, n, "source")
		if err != nil {
			return nil, err
		}
		target, err := decodeTyField(fields, n, "target")
		if err != nil {
			return nil, err
		}
		return &ast.Derefs{Token: pos(n), Source: source, Target: target}, nil
	case "is_local":
		ty, err := decodeTyField(fields, n, "ty")
		if err != nil {
			return nil, err
		}
		return &ast.IsLocal{Token: pos(n), Ty: ty}, nil
	case "is_external":
		ty, err := decodeTyField(fields, n, "ty")
		if err != nil {
			return nil, err
		}
		return &ast.IsExternal{Token: pos(n), Ty: ty}, nil
	case "is_deeply_external":
		ty, err := decodeTyField(fields, n, "ty")
		if err != nil {
			return nil, err
		}
		return &ast.IsDeeplyExternal{Token: pos(n), Ty: ty}, nil
	case "local_impl_allowed":
		tr, err := decodeTraitRefField(fields, n)
		if err != nil {
			return nil, err
		}
		return &ast.LocalImplAllowed{Token: pos(n), TraitRef: tr}, nil
	default:
		return nil, fmt.Errorf("%s: unknown domain goal kind %q", pos(n), kind)
	}
}

func decodeTyField(fields map[string]*yaml.Node, n *yaml.Node, name string) (ast.Ty, error) {
	tyNode, ok := field(fields, name)
	if !ok {
		return nil, fmt.Errorf("%s: missing field %q", pos(n), name)
	}
	return decodeTy(tyNode)
}

func decodeTraitRefField(fields map[string]*yaml.Node, n *yaml.Node) (*ast.TraitRef, error) {
	trNode, ok := field(fields, "trait_ref")
	if !ok {
		return nil, fmt.Errorf("%s: missing field %q", pos(n), "trait_ref")
	}
	return decodeTraitRef(trNode)
}

func decodeLeafGoal(n *yaml.Node) (ast.LeafGoal, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("leaf goal at %s: %w", pos(n), err)
	}
	switch kind {
	case "unify_tys":
		a, err := decodeTyField(fields, n, "a")
		if err != nil {
			return nil, err
		}
		b, err := decodeTyField(fields, n, "b")
		if err != nil {
			return nil, err
		}
		return &ast.UnifyTys{Token: pos(n), A: a, B: b}, nil
	case "unify_lifetimes":
		aNode, ok := field(fields, "a")
		if !ok {
			return nil, fmt.Errorf("%s: unify_lifetimes missing a", pos(n))
		}
		a, err := decodeLifetime(aNode)
		if err != nil {
			return nil, err
		}
		bNode, ok := field(fields, "b")
		if !ok {
			return nil, fmt.Errorf("%s: unify_lifetimes missing b", pos(n))
		}
		b, err := decodeLifetime(bNode)
		if err != nil {
			return nil, err
		}
		return &ast.UnifyLifetimes{Token: pos(n), A: a, B: b}, nil
	default:
		dg, err := decodeDomainGoal(n)
		if err != nil {
			return nil, err
		}
		return ast.DomainGoalLeaf{Goal: dg}, nil
	}
}

func decodeGoal(n *yaml.Node) (ast.Goal, error) {
	fields, err := mapOf(n)
	if err != nil {
		return nil, err
	}
	kind, err := stringField(fields, "kind")
	if err != nil {
		return nil, fmt.Errorf("goal at %s: %w", pos(n), err)
	}
	switch kind {
	case "forall":
		params, err := decodeParameterKinds(sequenceField(fields, "params"))
		if err != nil {
			return nil, err
		}
		innerNode, ok := field(fields, "goal")
		if !ok {
			return nil, fmt.Errorf("%s: forall missing goal", pos(n))
		}
		inner, err := decodeGoal(innerNode)
		if err != nil {
			return nil, err
		}
		return &ast.ForAllGoal{Token: pos(n), Params: params, Goal: inner}, nil
	case "exists":
		params, err := decodeParameterKinds(sequenceField(fields, "params"))
		if err != nil {
			return nil, err
		}
		innerNode, ok := field(fields, "goal")
		if !ok {
			return nil, fmt.Errorf("%s: exists missing goal", pos(n))
		}
		inner, err := decodeGoal(innerNode)
		if err != nil {
			return nil, err
		}
		return &ast.ExistsGoal{Token: pos(n), Params: params, Goal: inner}, nil
	case "implies":
		var hyps []ast.WhereClause
		for _, hn := range sequenceField(fields, "hypotheses") {
			wc, err := decodeWhereClause(hn)
			if err != nil {
				return nil, err
			}
			hyps = append(hyps, wc)
		}
		innerNode, ok := field(fields, "goal")
		if !ok {
			return nil, fmt.Errorf("%s: implies missing goal", pos(n))
		}
		inner, err := decodeGoal(innerNode)
		if err != nil {
			return nil, err
		}
		return &ast.ImpliesGoal{Token: pos(n), Hypotheses: hyps, Goal: inner}, nil
	case "and":
		goals := sequenceField(fields, "goals")
		if len(goals) < 2 {
			return nil, fmt.Errorf("%s: and requires at least 2 goals", pos(n))
		}
		lowered := make([]ast.Goal, len(goals))
		for i, gn := range goals {
			g, err := decodeGoal(gn)
			if err != nil {
				return nil, err
			}
			lowered[i] = g
		}
		tree := lowered[0]
		for _, g := range lowered[1:] {
			tree = &ast.AndGoal{Token: pos(n), G1: tree, G2: g}
		}
		return tree, nil
	case "not":
		innerNode, ok := field(fields, "goal")
		if !ok {
			return nil, fmt.Errorf("%s: not missing goal", pos(n))
		}
		inner, err := decodeGoal(innerNode)
		if err != nil {
			return nil, err
		}
		return &ast.NotGoal{Token: pos(n), G: inner}, nil
	default:
		leaf, err := decodeLeafGoal(n)
		if err != nil {
			return nil, err
		}
		return &ast.LeafGoalNode{Token: pos(n), Leaf: leaf}, nil
	}
}
