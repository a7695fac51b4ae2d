package xnatmap

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addrStrings(addrs []netip.Addr) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func TestAddresses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "IPv4 /30 includes network and broadcast",
			input: "192.168.1.0/30",
			want:  []string{"192.168.1.0", "192.168.1.1", "192.168.1.2", "192.168.1.3"},
		},
		{
			name:  "IPv4 /31",
			input: "192.168.1.0/31",
			want:  []string{"192.168.1.0", "192.168.1.1"},
		},
		{
			name:  "IPv4 /32",
			input: "10.0.0.7/32",
			want:  []string{"10.0.0.7"},
		},
		{
			name:  "IPv6 /126",
			input: "2001:db8::/126",
			want:  []string{"2001:db8::", "2001:db8::1", "2001:db8::2", "2001:db8::3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := MustParseNetworkSpec(tt.input).Addresses(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, addrStrings(addrs))
		})
	}
}

func TestHosts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "IPv4 /30 excludes network and broadcast",
			input: "192.168.1.0/30",
			want:  []string{"192.168.1.1", "192.168.1.2"},
		},
		{
			name:  "IPv4 /31 has no distinct hosts",
			input: "192.168.1.0/31",
			want:  []string{},
		},
		{
			name:  "IPv4 /32 has no distinct hosts",
			input: "10.0.0.7/32",
			want:  []string{},
		},
		{
			name:  "IPv6 /126",
			input: "2001:db8::/126",
			want:  []string{"2001:db8::1", "2001:db8::2"},
		},
		{
			name:  "IPv6 /127 has no distinct hosts",
			input: "2001:db8::/127",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := MustParseNetworkSpec(tt.input).Hosts(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, addrStrings(addrs))
		})
	}
}

func TestHostsBoundaries(t *testing.T) {
	// /24 主机子集：首 .1 末 .254，共 254 个，严格升序。
	addrs, err := MustParseNetworkSpec("192.168.1.0/24").Hosts(0)
	require.NoError(t, err)
	require.Len(t, addrs, 254)
	assert.Equal(t, "192.168.1.1", addrs[0].String())
	assert.Equal(t, "192.168.1.254", addrs[len(addrs)-1].String())
	for i := 1; i < len(addrs); i++ {
		assert.Equal(t, -1, addrs[i-1].Compare(addrs[i]))
	}
}

func TestEnumerateMaxEntries(t *testing.T) {
	spec := MustParseNetworkSpec("10.0.0.0/24")

	_, err := spec.Hosts(100)
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = spec.Addresses(255)
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	// 上限恰好够用时不报错。
	addrs, err := spec.Hosts(254)
	require.NoError(t, err)
	assert.Len(t, addrs, 254)
}

func TestEnumerateHugeBlock(t *testing.T) {
	// 主机位 >= 64：即便不设上限也拒绝枚举。
	_, err := MustParseNetworkSpec("2001:db8::/64").Addresses(0)
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = MustParseNetworkSpec("::/0").Hosts(0)
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestEnumerateZeroSpec(t *testing.T) {
	var spec NetworkSpec
	_, err := spec.Addresses(0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = spec.Hosts(0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
