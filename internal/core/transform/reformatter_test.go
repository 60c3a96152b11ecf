package transform

import (
	"fmt"
	"testing"

	"github.com/artpar/cmdeploy/internal/core/document"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Array-to-Map Tests
// =============================================================================

func TestReformatter_ArrayToMap(t *testing.T) {
	in := document.MustParse(`{"roles": [{"name": "a", "x": 1}, {"name": "b", "x": 2}]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"roles": {"a": {"x": 1}, "b": {"x": 2}}}`, out)
}

func TestReformatter_ArrayToMap_AllTableFields(t *testing.T) {
	for field, key := range arrayKeyFields {
		t.Run(field, func(t *testing.T) {
			in := document.MustParse(fmt.Sprintf(`{%q: [{%q: "k1", "v": true}]}`, field, key))

			out := NewReformatter().Transform(in)

			assertDocEqual(t, fmt.Sprintf(`{%q: {"k1": {"v": true}}}`, field), out)
		})
	}
}

func TestReformatter_ArrayToMap_CollisionLastWins(t *testing.T) {
	in := document.MustParse(`{"services": [
		{"name": "hdfs", "type": "first"},
		{"name": "yarn", "type": "YARN"},
		{"name": "hdfs", "type": "second"}
	]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"services": {"hdfs": {"type": "second"}, "yarn": {"type": "YARN"}}}`, out)
}

func TestReformatter_ArrayToMap_SkipsUnkeyableElements(t *testing.T) {
	in := document.MustParse(`{"roles": [
		"just-a-string",
		42,
		{"type": "no name"},
		{"name": null},
		{"name": {"nested": true}},
		["array"],
		{"name": "ok"}
	]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"roles": {"ok": {}}}`, out)
}

func TestReformatter_ArrayToMap_EmptyArray(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"clusters": []}`))

	assertDocEqual(t, `{"clusters": {}}`, out)
}

func TestReformatter_ArrayToMap_NumericKeyUsesLiteral(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"users": [{"name": 7, "x": 1}]}`))

	assertDocEqual(t, `{"users": {"7": {"x": 1}}}`, out)
}

func TestReformatter_ArrayToMap_NonArrayValueRecurses(t *testing.T) {
	in := document.MustParse(`{"roles": {"r1": {"serviceRef": {"serviceName": "hdfs"}, "type": "DATANODE"}}}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"roles": {"r1": {"type": "DATANODE"}}}`, out)
}

func TestReformatter_ArrayToMap_ElementsAreReformatted(t *testing.T) {
	in := document.MustParse(`{"services": [{
		"name": "hdfs",
		"roles": [{"name": "dn", "serviceRef": {"serviceName": "hdfs"}}],
		"config": {"items": [{"name": "dfs_replication", "value": "3"}]}
	}]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"services": {"hdfs": {
		"roles": {"dn": {}},
		"config": {"dfs_replication": "3"}
	}}}`, out)
}

// =============================================================================
// Items Tests
// =============================================================================

func TestReformatter_ItemsFlattened(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"items": [{"name": "foo", "value": 1}]}`))

	assertDocEqual(t, `{"foo": 1}`, out)
}

func TestReformatter_ItemsMergeIntoParentInPlace(t *testing.T) {
	in := document.MustParse(`{"config": {
		"before": "b",
		"items": [{"name": "x", "value": "1"}, {"name": "y", "value": {"deep": [1]}}],
		"after": "a"
	}}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"config": {"before": "b", "x": "1", "y": {"deep": [1]}, "after": "a"}}`, out)
}

func TestReformatter_ItemsMissingValueIsNull(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"items": [{"name": "foo"}, {"value": 2}, "junk"]}`))

	assertDocEqual(t, `{"foo": null}`, out)
}

func TestReformatter_ItemsNotArrayRecursesNormally(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"items": {"base": 1, "keep": 2}}`))

	assertDocEqual(t, `{"items": {"keep": 2}}`, out)
}

// =============================================================================
// Parcels Tests
// =============================================================================

func TestReformatter_Parcels(t *testing.T) {
	in := document.MustParse(`{"parcels": [
		{"product": "CDH", "version": "5.16.2", "stage": "ACTIVATED", "clusterRef": {"clusterName": "c1"}},
		{"product": "KAFKA", "version": "4.1.0", "stage": "DISTRIBUTED"},
		{"product": "NO_VERSION"}
	]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"parcels": {
		"CDH-5.16.2": {"stage": "ACTIVATED", "cluster": "c1"},
		"KAFKA-4.1.0": {"stage": "DISTRIBUTED"}
	}}`, out)
}

// =============================================================================
// Reference Tests
// =============================================================================

func TestReformatter_HostRefResolved(t *testing.T) {
	in := document.MustParse(`{"hosts": [{"hostId": "h1", "hostname": "node1"}], "x": {"hostRef": {"hostId": "h1"}}}`)

	out := NewReformatter().Transform(in)

	root := out.(*document.Object)
	x, ok := root.Get("x")
	require.True(t, ok)
	host, ok := x.(*document.Object).Get("host")
	require.True(t, ok)
	assert.Equal(t, document.String("node1"), host)
	_, ok = x.(*document.Object).Get("hostRef")
	assert.False(t, ok)
}

func TestReformatter_HostRefUnresolvableIsNull(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{"unknown id", `{"hostId": "missing"}`},
		{"no id", `{"hostname": "node1"}`},
		{"not an object", `"h1"`},
		{"null id", `{"hostId": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := document.MustParse(`{"hosts": [{"hostId": "h1", "hostname": "node1"}], "role": {"hostRef": ` + tt.ref + `}}`)

			out := NewReformatter().Transform(in)

			role, _ := out.(*document.Object).Get("role")
			assertDocEqual(t, `{"host": null}`, role)
		})
	}
}

func TestReformatter_NoHostsSection(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"role": {"hostRef": {"hostId": "h1"}, "name": "r"}}`))

	assertDocEqual(t, `{"role": {"host": null, "name": "r"}}`, out)
}

func TestReformatter_ClusterAndRoleConfigGroupRefs(t *testing.T) {
	in := document.MustParse(`{"role": {
		"clusterRef": {"clusterName": "cluster1", "displayName": "Cluster 1"},
		"roleConfigGroupRef": {"roleConfigGroupName": "hdfs-DATANODE-BASE"},
		"type": "DATANODE"
	}}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"role": {"cluster": "cluster1", "roleConfigGroup": "hdfs-DATANODE-BASE", "type": "DATANODE"}}`, out)
}

func TestReformatter_RefValueCopiedWithoutRecursion(t *testing.T) {
	in := document.MustParse(`{"clusterRef": {"clusterName": {"base": 1, "items": []}}}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"cluster": {"base": 1, "items": []}}`, out)
}

func TestReformatter_RefMissingNameIsNull(t *testing.T) {
	out := NewReformatter().Transform(document.MustParse(`{"clusterRef": {}, "roleConfigGroupRef": []}`))

	assertDocEqual(t, `{"cluster": null, "roleConfigGroup": null}`, out)
}

func TestReformatter_DropsServiceRefAndBase(t *testing.T) {
	in := document.MustParse(`{"a": 1, "serviceRef": {"serviceName": "hdfs"}, "base": true, "nested": [{"base": false, "b": 2}]}`)

	out := NewReformatter().Transform(in)

	assertDocEqual(t, `{"a": 1, "nested": [{"b": 2}]}`, out)
}

// =============================================================================
// General Behavior Tests
// =============================================================================

func TestReformatter_ScalarsAndArraysPassThrough(t *testing.T) {
	r := NewReformatter()

	assertDocEqual(t, `"text"`, r.Transform(document.String("text")))
	assertDocEqual(t, `[1, [2, {"x": null}], {}]`, r.Transform(document.MustParse(`[1, [2, {"x": null}], {}]`)))
	assertDocEqual(t, `null`, r.Transform(nil))
}

func TestReformatter_DoesNotMutateInput(t *testing.T) {
	in := deploymentFixture(t, uuid.NewString(), uuid.NewString())
	snapshot := in.Clone()

	NewReformatter().Transform(in)

	assert.True(t, document.Equal(snapshot, in), "input must not be modified")
}

func TestReformatter_Deterministic(t *testing.T) {
	h1, h2 := uuid.NewString(), uuid.NewString()
	a := deploymentFixture(t, h1, h2)
	b := a.Clone()

	r := NewReformatter()
	outA := r.Transform(a)
	outB := r.Transform(b)

	assert.True(t, document.Equal(outA, outB))
	// reusing one instance keeps no state between runs
	assert.True(t, document.Equal(outA, NewReformatter().Transform(a.Clone())))
}

func TestReformatter_OutputSharesNothingWithInput(t *testing.T) {
	in := document.MustParse(`{"x": {"items": [{"name": "n", "value": {"v": 1}}]}, "y": {"z": [1]}}`)

	out := NewReformatter().Transform(in).(*document.Object)

	// mutate the output; the input must stay intact
	x, _ := out.Get("x")
	n, _ := x.(*document.Object).Get("n")
	n.(*document.Object).Set("v", document.Number("2"))
	y, _ := out.Get("y")
	y.(*document.Object).Set("z", document.Null())

	assertDocEqual(t, `{"x": {"items": [{"name": "n", "value": {"v": 1}}]}, "y": {"z": [1]}}`, in)
}

func TestReformatter_FullDeployment(t *testing.T) {
	h1, h2 := uuid.NewString(), uuid.NewString()

	out := NewReformatter().Transform(deploymentFixture(t, h1, h2))

	assertDocEqual(t, fmt.Sprintf(`{
		"timestamp": "2024-01-01T00:00:00.000Z",
		"clusters": {
			"cluster1": {
				"version": "CDH5",
				"services": {
					"hdfs": {
						"type": "HDFS",
						"cluster": null,
						"roles": {
							"hdfs-DATANODE-1": {
								"type": "DATANODE",
								"host": "node1.example.com",
								"roleConfigGroup": "hdfs-DATANODE-BASE",
								"config": {"dfs_data_dir_list": "/data/1"}
							},
							"hdfs-DATANODE-2": {
								"type": "DATANODE",
								"host": "node2.example.com",
								"roleConfigGroup": "hdfs-DATANODE-BASE",
								"config": {}
							}
						},
						"roleConfigGroups": {
							"hdfs-DATANODE-BASE": {
								"roleType": "DATANODE",
								"config": {"role_jceks_password": "secret", "dfs_datanode_du_reserved": "1073741824"}
							}
						},
						"config": {}
					}
				},
				"parcels": {"CDH-5.16.2": {"stage": "ACTIVATED", "cluster": "cluster1"}}
			}
		},
		"hosts": {
			%q: {"hostname": "node1.example.com", "ipAddress": "10.0.0.1", "cluster": "cluster1"},
			%q: {"hostname": "node2.example.com", "ipAddress": "10.0.0.2", "cluster": "cluster1"}
		},
		"users": {"admin": {"roles": {}}},
		"versionInfo": {"version": "5.16.2", "buildUser": "jenkins"},
		"managementService": {
			"name": "mgmt",
			"type": "MGMT",
			"roles": {"mgmt-HOSTMONITOR": {"type": "HOSTMONITOR", "host": "node1.example.com"}}
		},
		"managerSettings": {"CLUSTER_STATS_COUNT": "5"},
		"allHostsConfig": {}
	}`, h1, h2), out)
}

// deploymentFixture returns a small but complete deployment export.
func deploymentFixture(t *testing.T, hostID1, hostID2 string) document.Value {
	t.Helper()
	return document.MustParse(fmt.Sprintf(`{
		"timestamp": "2024-01-01T00:00:00.000Z",
		"clusters": [{
			"name": "cluster1",
			"version": "CDH5",
			"services": [{
				"name": "hdfs",
				"type": "HDFS",
				"clusterRef": null,
				"roles": [{
					"name": "hdfs-DATANODE-1",
					"type": "DATANODE",
					"serviceRef": {"clusterName": "cluster1", "serviceName": "hdfs"},
					"hostRef": {"hostId": %[1]q},
					"roleConfigGroupRef": {"roleConfigGroupName": "hdfs-DATANODE-BASE"},
					"config": {"items": [{"name": "dfs_data_dir_list", "value": "/data/1"}]}
				}, {
					"name": "hdfs-DATANODE-2",
					"type": "DATANODE",
					"hostRef": {"hostId": %[2]q},
					"roleConfigGroupRef": {"roleConfigGroupName": "hdfs-DATANODE-BASE"},
					"config": {"items": []}
				}],
				"roleConfigGroups": [{
					"name": "hdfs-DATANODE-BASE",
					"roleType": "DATANODE",
					"base": true,
					"serviceRef": {"clusterName": "cluster1", "serviceName": "hdfs"},
					"config": {"items": [
						{"name": "role_jceks_password", "value": "secret"},
						{"name": "dfs_datanode_du_reserved", "value": "1073741824"}
					]}
				}],
				"config": {"items": []}
			}],
			"parcels": [{"product": "CDH", "version": "5.16.2", "stage": "ACTIVATED", "clusterRef": {"clusterName": "cluster1"}}]
		}],
		"hosts": [
			{"hostId": %[1]q, "hostname": "node1.example.com", "ipAddress": "10.0.0.1", "clusterRef": {"clusterName": "cluster1"}},
			{"hostId": %[2]q, "hostname": "node2.example.com", "ipAddress": "10.0.0.2", "clusterRef": {"clusterName": "cluster1"}}
		],
		"users": [{"name": "admin", "roles": ["ROLE_ADMIN"]}],
		"versionInfo": {"version": "5.16.2", "buildUser": "jenkins"},
		"managementService": {
			"name": "mgmt",
			"type": "MGMT",
			"roles": [{"name": "mgmt-HOSTMONITOR", "type": "HOSTMONITOR", "hostRef": {"hostId": %[1]q}}]
		},
		"managerSettings": {"items": [{"name": "CLUSTER_STATS_COUNT", "value": "5"}]},
		"allHostsConfig": {"items": []}
	}`, hostID1, hostID2))
}
