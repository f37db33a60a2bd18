// Package sample writes a starter document pre-populated with SSOT markers.
package sample

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

const header = "# Backend Deployment\n\n" +
	"> Generated from the single source of truth at `%s`.\n" +
	"> Edit that file and re-run ssot-embed instead of changing values here.\n\n"

// body is not a format string; it contains literal percent signs.
const body = `## Deployment

- **Deployment type**: {{ssot:deployment_type}}
- **Platform**: {{ssot:platform}}
- **Launch type**: {{ssot:launch_type}}
- **Region**: {{ssot:region}}
- **Autoscaling**: {{ssot:autoscaling}}

## Compute

- **Instance type**: {{ssot:ec2.instance_type}}
- **Capacity**: {{ssot:ec2.min_capacity}} to {{ssot:ec2.max_capacity}} (desired {{ssot:ec2.desired_capacity}})
- **AMI**: {{ssot:ec2.ami_id}}

## Containers

- **Cluster**: {{ssot:ecs.cluster_name}}
- **Service**: {{ssot:ecs.service_name}}
- **Task family**: {{ssot:ecs.task_definition_family}}
- **Task CPU / memory**: {{ssot:ecs.task.cpu}} / {{ssot:ecs.task.memory}}

## Scaling policy

- **Target CPU**: {{ssot:autoscaling_config.target_cpu_utilization}}%
- **Target memory**: {{ssot:autoscaling_config.target_memory_utilization}}%
- **Cooldowns**: up {{ssot:autoscaling_config.scale_up_cooldown}}s, down {{ssot:autoscaling_config.scale_down_cooldown}}s

## Network

- **VPC CIDR**: {{ssot:network.vpc_cidr}}
- **Public subnets**: {{ssot:network.public_subnets}}
- **Private subnets**: {{ssot:network.private_subnets}}

## Security

- **Encryption at rest**: {{ssot:security.encryption_at_rest}}
- **Encryption in transit**: {{ssot:security.encryption_in_transit}}
- **Instance role**: {{ssot:security.iam_roles.ec2_instance_role}}
- **Task role**: {{ssot:security.iam_roles.ecs_task_role}}

## Targets

- **P95 latency**: {{ssot:performance.response_time_p95}}
- **Throughput**: {{ssot:performance.throughput_rps}} RPS
- **Availability**: {{ssot:performance.availability_target}}
- **Error rate threshold**: {{ssot:performance.error_rate_threshold}}

## Monitoring

- **Log group**: {{ssot:monitoring.cloudwatch.log_group}}
- **Retention**: {{ssot:monitoring.cloudwatch.log_retention_days}} days

---

Version {{ssot:metadata.version}}, owned by {{ssot:metadata.owner}}, last updated {{ssot:metadata.last_updated}}.
`

// Render returns the sample document. sourcePath is named in the header note.
func Render(sourcePath string) string {
	return fmt.Sprintf(header, sourcePath) + body
}

// FileMode is the permission given to a newly created sample document.
const FileMode os.FileMode = 0o644

// Write creates or replaces the sample document at path, creating parent
// directories as needed. A replaced file keeps its permissions; a new one
// gets FileMode.
func Write(path, sourcePath string) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0o750)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	mode := FileMode

	info, statErr := os.Stat(path)
	if statErr == nil {
		mode = info.Mode().Perm()
	}

	err = atomic.WriteFile(path, strings.NewReader(Render(sourcePath)))
	if err != nil {
		return fmt.Errorf("writing sample %q: %w", path, err)
	}

	err = os.Chmod(path, mode)
	if err != nil {
		return fmt.Errorf("setting mode of %q: %w", path, err)
	}

	return nil
}
