package instances

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"

	"github.com/zx06/piu/internal/errors"
)

// Instance 是交互模式里可选的一台运行中 EC2 实例。
type Instance struct {
	ID        string
	Name      string
	Stack     string
	Version   string
	PrivateIP string
}

// Lister 列出某个 region 内运行中的实例。
type Lister interface {
	List(ctx context.Context, region string) ([]Instance, *errors.PiuError)
}

// EC2Lister 是基于 aws-sdk-go 的默认实现。API 非 nil 时使用注入的
// 客户端（测试用），否则按 region 新建 session。
type EC2Lister struct {
	API ec2iface.EC2API
}

func (l *EC2Lister) client(region string) (ec2iface.EC2API, *errors.PiuError) {
	if l.API != nil {
		return l.API, nil
	}
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(errors.CodeAWSFailed, "failed to create AWS session", map[string]any{"region": region}, err)
	}
	return ec2.New(sess), nil
}

func (l *EC2Lister) List(ctx context.Context, region string) ([]Instance, *errors.PiuError) {
	svc, xe := l.client(region)
	if xe != nil {
		return nil, xe
	}

	input := &ec2.DescribeInstancesInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []*string{aws.String("running")},
			},
		},
	}

	var result []Instance
	err := svc.DescribeInstancesPagesWithContext(ctx, input, func(page *ec2.DescribeInstancesOutput, _ bool) bool {
		for _, res := range page.Reservations {
			for _, inst := range res.Instances {
				item := Instance{
					ID:        aws.StringValue(inst.InstanceId),
					PrivateIP: aws.StringValue(inst.PrivateIpAddress),
				}
				for _, tag := range inst.Tags {
					switch aws.StringValue(tag.Key) {
					case "Name":
						item.Name = aws.StringValue(tag.Value)
					case "StackName":
						item.Stack = aws.StringValue(tag.Value)
					case "StackVersion":
						item.Version = aws.StringValue(tag.Value)
					}
				}
				result = append(result, item)
			}
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeAWSFailed, "failed to list EC2 instances", map[string]any{"region": region}, err)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
