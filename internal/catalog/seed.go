package catalog

// Seed returns the built-in starter catalog. It covers the common interview
// topics at every tier so the tool is usable before any import.
func Seed() *Catalog {
	c, err := New(seedProblems)
	if err != nil {
		// The seed is compiled in; a bad entry is a programming error.
		panic(err)
	}
	return c
}

var seedProblems = []Problem{
	{ID: "two-sum", Title: "Two Sum", Category: "Arrays", Difficulty: DifficultyEasy,
		Companies: []string{"Google", "Amazon"}, Link: "https://leetcode.com/problems/two-sum/", TimeEstimateMinutes: 15},
	{ID: "best-time-to-buy-sell-stock", Title: "Best Time to Buy and Sell Stock", Category: "Arrays", Difficulty: DifficultyEasy,
		Companies: []string{"Meta", "Amazon"}, Link: "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/", TimeEstimateMinutes: 15},
	{ID: "product-of-array-except-self", Title: "Product of Array Except Self", Category: "Arrays", Difficulty: DifficultyMedium,
		Companies: []string{"Microsoft"}, Link: "https://leetcode.com/problems/product-of-array-except-self/", TimeEstimateMinutes: 25},
	{ID: "maximum-subarray", Title: "Maximum Subarray", Category: "Arrays", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon", "Apple"}, Link: "https://leetcode.com/problems/maximum-subarray/", TimeEstimateMinutes: 20},
	{ID: "trapping-rain-water", Title: "Trapping Rain Water", Category: "Arrays", Difficulty: DifficultyHard,
		Companies: []string{"Google"}, Link: "https://leetcode.com/problems/trapping-rain-water/", TimeEstimateMinutes: 35},

	{ID: "valid-anagram", Title: "Valid Anagram", Category: "Strings", Difficulty: DifficultyEasy,
		Companies: []string{"Bloomberg"}, Link: "https://leetcode.com/problems/valid-anagram/", TimeEstimateMinutes: 10},
	{ID: "longest-substring-without-repeating", Title: "Longest Substring Without Repeating Characters", Category: "Strings", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon", "Adobe"}, Link: "https://leetcode.com/problems/longest-substring-without-repeating-characters/", TimeEstimateMinutes: 25},
	{ID: "minimum-window-substring", Title: "Minimum Window Substring", Category: "Strings", Difficulty: DifficultyHard,
		Companies: []string{"Meta", "Uber"}, Link: "https://leetcode.com/problems/minimum-window-substring/", TimeEstimateMinutes: 40},

	{ID: "valid-parentheses", Title: "Valid Parentheses", Category: "Stacks", Difficulty: DifficultyEasy,
		Companies: []string{"Amazon"}, Link: "https://leetcode.com/problems/valid-parentheses/", TimeEstimateMinutes: 10},
	{ID: "largest-rectangle-in-histogram", Title: "Largest Rectangle in Histogram", Category: "Stacks", Difficulty: DifficultyHard,
		Companies: []string{"Google"}, Link: "https://leetcode.com/problems/largest-rectangle-in-histogram/", TimeEstimateMinutes: 40},

	{ID: "reverse-linked-list", Title: "Reverse Linked List", Category: "Linked Lists", Difficulty: DifficultyEasy,
		Companies: []string{"Microsoft", "Apple"}, Link: "https://leetcode.com/problems/reverse-linked-list/", TimeEstimateMinutes: 15},
	{ID: "merge-two-sorted-lists", Title: "Merge Two Sorted Lists", Category: "Linked Lists", Difficulty: DifficultyEasy,
		Companies: []string{"Amazon"}, Link: "https://leetcode.com/problems/merge-two-sorted-lists/", TimeEstimateMinutes: 15},
	{ID: "lru-cache", Title: "LRU Cache", Category: "Linked Lists", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon", "Meta"}, Link: "https://leetcode.com/problems/lru-cache/", TimeEstimateMinutes: 35},
	{ID: "merge-k-sorted-lists", Title: "Merge k Sorted Lists", Category: "Linked Lists", Difficulty: DifficultyHard,
		Companies: []string{"Google", "Amazon"}, Link: "https://leetcode.com/problems/merge-k-sorted-lists/", TimeEstimateMinutes: 40},

	{ID: "invert-binary-tree", Title: "Invert Binary Tree", Category: "Trees", Difficulty: DifficultyEasy,
		Companies: []string{"Google"}, Link: "https://leetcode.com/problems/invert-binary-tree/", TimeEstimateMinutes: 10},
	{ID: "binary-tree-level-order", Title: "Binary Tree Level Order Traversal", Category: "Trees", Difficulty: DifficultyMedium,
		Companies: []string{"Microsoft"}, Link: "https://leetcode.com/problems/binary-tree-level-order-traversal/", TimeEstimateMinutes: 20},
	{ID: "serialize-deserialize-binary-tree", Title: "Serialize and Deserialize Binary Tree", Category: "Trees", Difficulty: DifficultyHard,
		Companies: []string{"Meta", "Uber"}, Link: "https://leetcode.com/problems/serialize-and-deserialize-binary-tree/", TimeEstimateMinutes: 45},

	{ID: "binary-search", Title: "Binary Search", Category: "Binary Search", Difficulty: DifficultyEasy,
		Companies: []string{"Apple"}, Link: "https://leetcode.com/problems/binary-search/", TimeEstimateMinutes: 10},
	{ID: "search-rotated-sorted-array", Title: "Search in Rotated Sorted Array", Category: "Binary Search", Difficulty: DifficultyMedium,
		Companies: []string{"Meta", "Amazon"}, Link: "https://leetcode.com/problems/search-in-rotated-sorted-array/", TimeEstimateMinutes: 25},
	{ID: "median-of-two-sorted-arrays", Title: "Median of Two Sorted Arrays", Category: "Binary Search", Difficulty: DifficultyVeryHard,
		Companies: []string{"Google", "Apple"}, Link: "https://leetcode.com/problems/median-of-two-sorted-arrays/", TimeEstimateMinutes: 50},

	{ID: "climbing-stairs", Title: "Climbing Stairs", Category: "Dynamic Programming", Difficulty: DifficultyEasy,
		Companies: []string{"Adobe"}, Link: "https://leetcode.com/problems/climbing-stairs/", TimeEstimateMinutes: 15},
	{ID: "coin-change", Title: "Coin Change", Category: "Dynamic Programming", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon"}, Link: "https://leetcode.com/problems/coin-change/", TimeEstimateMinutes: 30},
	{ID: "longest-increasing-subsequence", Title: "Longest Increasing Subsequence", Category: "Dynamic Programming", Difficulty: DifficultyMedium,
		Companies: []string{"Microsoft"}, Link: "https://leetcode.com/problems/longest-increasing-subsequence/", TimeEstimateMinutes: 30},
	{ID: "edit-distance", Title: "Edit Distance", Category: "Dynamic Programming", Difficulty: DifficultyHard,
		Companies: []string{"Google"}, Link: "https://leetcode.com/problems/edit-distance/", TimeEstimateMinutes: 40},
	{ID: "regular-expression-matching", Title: "Regular Expression Matching", Category: "Dynamic Programming", Difficulty: DifficultyVeryHard,
		Companies: []string{"Google", "Meta"}, Link: "https://leetcode.com/problems/regular-expression-matching/", TimeEstimateMinutes: 55},

	{ID: "number-of-islands", Title: "Number of Islands", Category: "Graphs", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon", "Bloomberg"}, Link: "https://leetcode.com/problems/number-of-islands/", TimeEstimateMinutes: 25},
	{ID: "course-schedule", Title: "Course Schedule", Category: "Graphs", Difficulty: DifficultyMedium,
		Companies: []string{"Meta"}, Link: "https://leetcode.com/problems/course-schedule/", TimeEstimateMinutes: 30},
	{ID: "word-ladder", Title: "Word Ladder", Category: "Graphs", Difficulty: DifficultyHard,
		Companies: []string{"Amazon", "LinkedIn"}, Link: "https://leetcode.com/problems/word-ladder/", TimeEstimateMinutes: 40},
	{ID: "alien-dictionary", Title: "Alien Dictionary", Category: "Graphs", Difficulty: DifficultyVeryHard,
		Companies: []string{"Google", "Airbnb"}, Link: "https://leetcode.com/problems/alien-dictionary/", TimeEstimateMinutes: 50},

	{ID: "subsets", Title: "Subsets", Category: "Backtracking", Difficulty: DifficultyMedium,
		Companies: []string{"Meta"}, Link: "https://leetcode.com/problems/subsets/", TimeEstimateMinutes: 25},
	{ID: "n-queens", Title: "N-Queens", Category: "Backtracking", Difficulty: DifficultyHard,
		Companies: []string{"Microsoft"}, Link: "https://leetcode.com/problems/n-queens/", TimeEstimateMinutes: 45},

	{ID: "top-k-frequent-elements", Title: "Top K Frequent Elements", Category: "Heaps", Difficulty: DifficultyMedium,
		Companies: []string{"Amazon", "Uber"}, Link: "https://leetcode.com/problems/top-k-frequent-elements/", TimeEstimateMinutes: 25},
	{ID: "find-median-from-data-stream", Title: "Find Median from Data Stream", Category: "Heaps", Difficulty: DifficultyHard,
		Companies: []string{"Google"}, Link: "https://leetcode.com/problems/find-median-from-data-stream/", TimeEstimateMinutes: 40},
}
