// Package terraform emits Terraform HCL for an evaluated plan. One
// resource block is generated per planned resource, in the dialect of
// the provider the engine selected.
package terraform

import (
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"cloudforge/core/engine"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// providerSources maps providers to their Terraform registry sources
var providerSources = map[types.Provider][2]string{
	types.ProviderAWS:     {"aws", "hashicorp/aws"},
	types.ProviderAzure:   {"azurerm", "hashicorp/azurerm"},
	types.ProviderGCP:     {"google", "hashicorp/google"},
	types.ProviderHetzner: {"hcloud", "hetznercloud/hcloud"},
}

// Emitter writes Terraform HCL
type Emitter struct{}

// New creates a Terraform emitter
func New() *Emitter {
	return &Emitter{}
}

// Name identifies the emitter
func (e *Emitter) Name() string { return "terraform" }

// Emit writes one HCL file covering every resource in the plan
func (e *Emitter) Emit(w io.Writer, plan *engine.Plan) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	used := usedProviders(plan)
	writeTerraformBlock(root, used)

	for _, p := range used {
		root.AppendNewline()
		writeProviderBlock(root, p, plan)
	}

	for _, res := range plan.Resources {
		root.AppendNewline()
		if err := writeResource(root, res); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// usedProviders returns the distinct selected providers in lexical order
func usedProviders(plan *engine.Plan) []types.Provider {
	set := make(map[types.Provider]bool)
	for _, res := range plan.Resources {
		set[res.Descriptor.Provider] = true
	}
	out := make([]types.Provider, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func writeTerraformBlock(root *hclwrite.Body, used []types.Provider) {
	tf := root.AppendNewBlock("terraform", nil).Body()
	required := tf.AppendNewBlock("required_providers", nil).Body()
	for _, p := range used {
		src, ok := providerSources[p]
		if !ok {
			continue
		}
		required.SetAttributeValue(src[0], cty.ObjectVal(map[string]cty.Value{
			"source": cty.StringVal(src[1]),
		}))
	}
}

func writeProviderBlock(root *hclwrite.Body, p types.Provider, plan *engine.Plan) {
	src := providerSources[p]
	body := root.AppendNewBlock("provider", []string{src[0]}).Body()

	// region-scoped providers configure the first selected region
	if p == types.ProviderAWS {
		if region := firstRegion(plan, p); region != "" {
			body.SetAttributeValue("region", cty.StringVal(region))
		}
	}
	if p == types.ProviderGCP {
		if region := firstRegion(plan, p); region != "" {
			body.SetAttributeValue("region", cty.StringVal(region))
		}
	}
	if p == types.ProviderAzure {
		body.AppendNewBlock("features", nil)
	}
}

func firstRegion(plan *engine.Plan, p types.Provider) string {
	for _, res := range plan.Resources {
		if res.Descriptor.Provider == p {
			return res.Descriptor.RegionID.String()
		}
	}
	return ""
}

func writeResource(root *hclwrite.Body, res engine.PlannedResource) error {
	desc := res.Descriptor
	switch desc.Provider {
	case types.ProviderAWS:
		body := root.AppendNewBlock("resource", []string{"aws_instance", res.Request.Name}).Body()
		body.SetAttributeValue("ami", cty.StringVal(desc.ImageID))
		body.SetAttributeValue("instance_type", cty.StringVal(desc.InstanceType))
		body.SetAttributeValue("tags", cty.ObjectVal(map[string]cty.Value{
			"Name": cty.StringVal(res.Request.Name),
		}))

	case types.ProviderGCP:
		body := root.AppendNewBlock("resource", []string{"google_compute_instance", res.Request.Name}).Body()
		body.SetAttributeValue("name", cty.StringVal(res.Request.Name))
		body.SetAttributeValue("machine_type", cty.StringVal(desc.InstanceType))
		body.SetAttributeValue("zone", cty.StringVal(desc.RegionID.String()+"-a"))
		disk := body.AppendNewBlock("boot_disk", nil).Body()
		params := disk.AppendNewBlock("initialize_params", nil).Body()
		params.SetAttributeValue("image", cty.StringVal(desc.ImageID))
		net := body.AppendNewBlock("network_interface", nil).Body()
		net.SetAttributeValue("network", cty.StringVal("default"))
		if desc.GPU != nil {
			accel := body.AppendNewBlock("guest_accelerator", nil).Body()
			accel.SetAttributeValue("type", cty.StringVal(desc.GPU.SKU))
			accel.SetAttributeValue("count", cty.NumberIntVal(int64(desc.GPU.Count)))
		}

	case types.ProviderAzure:
		body := root.AppendNewBlock("resource", []string{"azurerm_linux_virtual_machine", res.Request.Name}).Body()
		body.SetAttributeValue("name", cty.StringVal(res.Request.Name))
		body.SetAttributeValue("location", cty.StringVal(desc.RegionID.String()))
		body.SetAttributeValue("size", cty.StringVal(desc.InstanceType))
		body.SetAttributeValue("source_image_id", cty.StringVal(desc.ImageID))

	case types.ProviderHetzner:
		body := root.AppendNewBlock("resource", []string{"hcloud_server", res.Request.Name}).Body()
		body.SetAttributeValue("name", cty.StringVal(res.Request.Name))
		body.SetAttributeValue("server_type", cty.StringVal(desc.InstanceType))
		body.SetAttributeValue("image", cty.StringVal(desc.ImageID))
		body.SetAttributeValue("location", cty.StringVal(desc.RegionID.String()))

	default:
		return errors.Newf(errors.TypeEmit, "no terraform dialect for provider %q", desc.Provider)
	}

	return nil
}
