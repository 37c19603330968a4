package routing

import (
	"net/netip"
	"strings"
)

// StupsNetwork 是保留的内网段；目标是该段内的字面 IP 且没有配置
// bastion 时，必须先问到一个 bastion 才能继续。
var StupsNetwork = netip.MustParsePrefix("172.31.0.0/16")

// oddPrefix 是 bastion 主机的命名约定前缀。
const oddPrefix = "odd-"

// Route 是路由决策结果。FirstHop 是 SSH 客户端直连的主机；
// RemoteHost 非空时表示经由 FirstHop 到达的最终目标。
type Route struct {
	FirstHop   string
	RemoteHost string

	// NeedsBastion: 目标是 STUPS 段内的字面 IP 且未配置 bastion。
	// 调用方必须先取得 bastion 主机名（提示 + DNS 校验）再重新解析。
	NeedsBastion bool
}

// Resolve 根据目标主机与已配置的 bastion（空串 = 未配置）计算路由。
// 纯函数，不做任何 I/O。
func Resolve(target, oddHost string) Route {
	firstHop := target
	remoteHost := target
	if oddHost != "" {
		firstHop = oddHost
	}

	if firstHop == remoteHost {
		// 从 bastion 跳到它自己没有意义
		remoteHost = ""
	} else if strings.HasPrefix(remoteHost, oddPrefix) {
		// 目标本身就是 bastion，直连即可
		firstHop = remoteHost
		remoteHost = ""
	}

	return Route{
		FirstHop:     firstHop,
		RemoteHost:   remoteHost,
		NeedsBastion: oddHost == "" && InStupsNetwork(target),
	}
}

// InStupsNetwork 判断 host 是否为 STUPS 段内的字面 IP。
// 非 IP 的主机名一律返回 false（不触发 bastion 前置条件）。
func InStupsNetwork(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return StupsNetwork.Contains(addr.Unmap())
}

// SplitTarget 拆分 [USER@]HOST；没有 @ 时 user 为空串。
// 按 OpenSSH 习惯在最后一个 @ 处拆分。
func SplitTarget(s string) (user, host string) {
	if idx := strings.LastIndex(s, "@"); idx != -1 {
		return s[:idx], s[idx+1:]
	}
	return "", s
}
