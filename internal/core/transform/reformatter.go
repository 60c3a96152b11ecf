package transform

import "github.com/artpar/cmdeploy/internal/core/document"

// Fields with dedicated reformat rules.
const (
	fieldItems              = "items"
	fieldParcels            = "parcels"
	fieldHostRef            = "hostRef"
	fieldClusterRef         = "clusterRef"
	fieldRoleConfigGroupRef = "roleConfigGroupRef"
	fieldServiceRef         = "serviceRef"
	fieldBase               = "base"
	fieldHosts              = "hosts"
)

// =============================================================================
// Reformatter
// =============================================================================

// Reformatter rewrites a deployment export into its compact shape.
//
// Rules, applied to every object field in order:
//   - items: a list of {name, value} records is flattened into the parent
//     object, one field per record; the items field itself disappears
//   - parcels: becomes an object keyed "<product>-<version>"
//   - hostRef: becomes "host", the referenced host's hostname
//   - clusterRef / roleConfigGroupRef: become "cluster" / "roleConfigGroup",
//     the referenced name
//   - serviceRef, base: dropped
//   - roles, services, roleConfigGroups, clusters, users, hosts: arrays become
//     objects keyed by each element's key field (see ArrayKeyField)
//
// Malformed shapes degrade instead of failing: elements that cannot be keyed
// are skipped, references that cannot be resolved become null, and a keyed
// array holding two elements with the same key keeps the last one.
//
// Example:
//
//	in := document.MustParse(`{
//	    "hosts": [{"hostId": "h1", "hostname": "node1"}],
//	    "roles": [{"name": "dn1", "hostRef": {"hostId": "h1"}}]
//	}`)
//	out := NewReformatter().Transform(in)
//	// {"hosts": {"h1": {"hostname": "node1"}}, "roles": {"dn1": {"host": "node1"}}}
type Reformatter struct{}

// NewReformatter creates a Reformatter.
func NewReformatter() *Reformatter {
	return &Reformatter{}
}

func (r *Reformatter) Name() string {
	return NameReformat
}

// Transform reformats doc. The host identifier table is rebuilt from doc on
// every call.
func (r *Reformatter) Transform(doc document.Value) document.Value {
	run := &reformatRun{hostnames: HostnameIndex(doc)}
	return run.reformat(doc)
}

// HostnameIndex maps every hostId listed in the top-level hosts array of doc
// to its hostname. Hosts without a scalar hostId or hostname are skipped.
func HostnameIndex(doc document.Value) map[string]string {
	index := make(map[string]string)

	root, ok := doc.(*document.Object)
	if !ok {
		return index
	}
	hosts, ok := root.Get(fieldHosts)
	if !ok {
		return index
	}
	list, ok := hosts.(document.Array)
	if !ok {
		return index
	}

	for _, h := range list {
		host, ok := h.(*document.Object)
		if !ok {
			continue
		}
		id, ok := scalarText(host, "hostId")
		if !ok {
			continue
		}
		name, ok := scalarText(host, "hostname")
		if !ok {
			continue
		}
		index[id] = name
	}
	return index
}

// reformatRun carries the per-call state of a single Transform.
type reformatRun struct {
	hostnames map[string]string
}

func (r *reformatRun) reformat(v document.Value) document.Value {
	switch v := v.(type) {
	case *document.Object:
		return r.reformatObject(v)
	case document.Array:
		return r.reformatArray(v)
	case document.Scalar:
		return v
	}
	return document.Null()
}

func (r *reformatRun) reformatObject(obj *document.Object) *document.Object {
	out := document.NewObject()

	for key, val := range obj.All() {
		switch key {
		case fieldItems:
			if items, ok := val.(document.Array); ok {
				out.SetAll(itemsToObject(items))
				continue
			}
		case fieldParcels:
			if parcels, ok := val.(document.Array); ok {
				out.Set(key, r.parcelsToObject(parcels))
				continue
			}
		case fieldHostRef:
			out.Set("host", r.resolveHost(val))
			continue
		case fieldClusterRef:
			out.Set("cluster", refName(val, "clusterName"))
			continue
		case fieldRoleConfigGroupRef:
			out.Set("roleConfigGroup", refName(val, "roleConfigGroupName"))
			continue
		case fieldServiceRef, fieldBase:
			continue
		default:
			if keyField, ok := ArrayKeyField(key); ok {
				if list, ok := val.(document.Array); ok {
					out.Set(key, r.arrayToObject(keyField, list))
					continue
				}
			}
		}

		out.Set(key, r.reformat(val))
	}

	return out
}

func (r *reformatRun) reformatArray(arr document.Array) document.Array {
	out := make(document.Array, len(arr))
	for i, v := range arr {
		out[i] = r.reformat(v)
	}
	return out
}

// arrayToObject collapses a list of records into an object keyed by keyField.
// The key field is removed from each record.
func (r *reformatRun) arrayToObject(keyField string, list document.Array) *document.Object {
	collapsed := document.NewObject()
	for _, el := range list {
		rec, ok := el.(*document.Object)
		if !ok {
			continue
		}
		key, ok := scalarText(rec, keyField)
		if !ok {
			continue
		}
		collapsed.Set(key, without(rec, keyField))
	}
	return r.reformatObject(collapsed)
}

// parcelsToObject collapses parcel records into an object keyed
// "<product>-<version>".
func (r *reformatRun) parcelsToObject(list document.Array) *document.Object {
	collapsed := document.NewObject()
	for _, el := range list {
		rec, ok := el.(*document.Object)
		if !ok {
			continue
		}
		product, ok := scalarText(rec, "product")
		if !ok {
			continue
		}
		version, ok := scalarText(rec, "version")
		if !ok {
			continue
		}
		collapsed.Set(product+"-"+version, without(rec, "product", "version"))
	}
	return r.reformatObject(collapsed)
}

// resolveHost replaces a hostRef with the referenced hostname, or null when
// the reference cannot be resolved.
func (r *reformatRun) resolveHost(ref document.Value) document.Value {
	obj, ok := ref.(*document.Object)
	if !ok {
		return document.Null()
	}
	id, ok := scalarText(obj, "hostId")
	if !ok {
		return document.Null()
	}
	name, ok := r.hostnames[id]
	if !ok {
		return document.Null()
	}
	return document.String(name)
}

// itemsToObject flattens [{name, value}, ...] into {name: value, ...}.
// Values are copied as-is; records without a name are skipped.
func itemsToObject(items document.Array) *document.Object {
	out := document.NewObject()
	for _, el := range items {
		item, ok := el.(*document.Object)
		if !ok {
			continue
		}
		name, ok := scalarText(item, "name")
		if !ok {
			continue
		}
		value, ok := item.Get("value")
		if !ok {
			out.Set(name, document.Null())
			continue
		}
		out.Set(name, value.Clone())
	}
	return out
}

// refName returns a copy of the named field of a reference object, or null.
func refName(ref document.Value, field string) document.Value {
	obj, ok := ref.(*document.Object)
	if !ok {
		return document.Null()
	}
	v, ok := obj.Get(field)
	if !ok {
		return document.Null()
	}
	return v.Clone()
}

// scalarText returns the text of a non-null scalar field.
func scalarText(obj *document.Object, field string) (string, bool) {
	v, ok := obj.Get(field)
	if !ok {
		return "", false
	}
	s, ok := v.(document.Scalar)
	if !ok || s.IsNull() {
		return "", false
	}
	return s.Text(), true
}

// without returns a shallow copy of obj minus the given fields. Callers
// reformat the result, which rebuilds every nested container.
func without(obj *document.Object, fields ...string) *document.Object {
	out := document.NewObject()
	for key, val := range obj.All() {
		skip := false
		for _, f := range fields {
			if key == f {
				skip = true
				break
			}
		}
		if !skip {
			out.Set(key, val)
		}
	}
	return out
}
