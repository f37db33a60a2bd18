package marker_test

import (
	"fmt"

	"github.com/0xalexb/ssot-embed/marker"
	"github.com/0xalexb/ssot-embed/store"
)

func ExampleResolver_Resolve() {
	tree := store.Tree{
		"ec2": map[string]any{"instance_type": "t3.medium"},
	}

	resolver := marker.NewResolver(store.New(&tree))

	fmt.Println(resolver.Resolve("Instance: {{ssot:ec2.instance_type}}"))
	fmt.Println(resolver.Resolve("AMI: {{ssot:ec2.ami_id}}"))
	// Output:
	// Instance: t3.medium
	// AMI: {ERROR: ec2.ami_id not found}
}
