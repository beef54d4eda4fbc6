package aws

// SupportedRegions is the fixed list offered during interactive region
// setup. Ordering is a stable public contract: the prompt is 1-indexed
// into this list, so option 3 always resolves to us-west-2.
var SupportedRegions = []string{
	"us-east-1",
	"us-west-1",
	"us-west-2",
	"eu-west-1",
	"eu-central-1",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-northeast-1",
	"sa-east-1",
}

// DefaultRegion is used when the user declines interactive region setup.
const DefaultRegion = "us-east-1"
