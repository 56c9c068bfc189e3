package seed

import "restfulmind/internal/models"

func strPtr(s string) *string { return &s }

// Исходные категории сайта. Slug фиксированы — на них ссылаются статьи.
var categories = []models.Category{
	{
		Name:            "Sleep & Rest",
		Slug:            "sleep-rest",
		Description:     "Explore the science of sleep, understand sleep cycles, and discover practical tips to improve your sleep quality for better health and well-being.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1758243954982-cd1d5a8b9f97?w=600"),
		MetaTitle:       strPtr("Sleep & Rest Articles | RestfulMind"),
		MetaDescription: strPtr("Science-backed articles about sleep quality, sleep cycles, and rest for better health."),
	},
	{
		Name:            "Mental Health",
		Slug:            "mental-health",
		Description:     "Resources and insights on maintaining mental wellness, understanding emotions, and building psychological resilience in daily life.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1758274539654-23fa349cc090?w=600"),
		MetaTitle:       strPtr("Mental Health Resources | RestfulMind"),
		MetaDescription: strPtr("Informational articles about mental wellness, emotional health, and psychological well-being."),
	},
	{
		Name:            "Stress & Anxiety",
		Slug:            "stress-anxiety",
		Description:     "Understanding stress and anxiety, their impacts on daily life, and evidence-based strategies for management and relief.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1665764356520-3daa0e8326b1?w=600"),
		MetaTitle:       strPtr("Stress & Anxiety Management | RestfulMind"),
		MetaDescription: strPtr("Learn about stress management and anxiety relief through science-backed approaches."),
	},
	{
		Name:            "Productivity & Focus",
		Slug:            "productivity-focus",
		Description:     "Strategies and techniques to enhance focus, boost productivity, and achieve more while maintaining balance and well-being.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1700554565325-aea824405166?w=600"),
		MetaTitle:       strPtr("Productivity & Focus Tips | RestfulMind"),
		MetaDescription: strPtr("Evidence-based strategies to improve focus, productivity, and work-life balance."),
	},
	{
		Name:            "Lifestyle & Habits",
		Slug:            "lifestyle-habits",
		Description:     "Building healthy habits and lifestyle choices that support overall well-being, from nutrition to daily routines.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1628743270481-123e2501e518?w=600"),
		MetaTitle:       strPtr("Healthy Lifestyle & Habits | RestfulMind"),
		MetaDescription: strPtr("Articles about building healthy habits and lifestyle choices for better living."),
	},
	{
		Name:            "Research & Studies",
		Slug:            "research-studies",
		Description:     "Deep dives into scientific research and studies on sleep, mental health, and productivity, explained in accessible language.",
		ImageURL:        strPtr("https://images.unsplash.com/photo-1692035072849-93a511f35b2c?w=600"),
		MetaTitle:       strPtr("Sleep & Mental Health Research | RestfulMind"),
		MetaDescription: strPtr("Scientific research and studies about sleep, mental health, and productivity explained."),
	},
}

type seedArticle struct {
	Title         string
	Slug          string
	CategorySlug  string
	Excerpt       string
	FeaturedImage string
	ReadingTime   int
	IsFeatured    bool
	Content       string
}

var articles = []seedArticle{
	{
		Title:         "How Sleep Affects Mental Health",
		Slug:          "how-sleep-affects-mental-health",
		CategorySlug:  "sleep-rest",
		Excerpt:       "Discover the profound connection between sleep quality and mental well-being, and learn why prioritizing rest is essential for psychological health.",
		FeaturedImage: "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=800",
		ReadingTime:   8,
		IsFeatured:    true,
		Content: `<h2>The Sleep-Mental Health Connection</h2>
<p>Sleep and mental health share a bidirectional relationship that scientists are only beginning to fully understand. Poor sleep can contribute to the development of mental health issues, while mental health conditions often disrupt sleep patterns.</p>

<h3>How Sleep Affects Your Brain</h3>
<p>During sleep, your brain performs critical maintenance functions. The glymphatic system clears toxic waste products, memories are consolidated, and emotional experiences are processed. When sleep is disrupted, these processes suffer.</p>

<p>Research has shown that even one night of poor sleep can increase anxiety levels by up to 30%. Chronic sleep deprivation is associated with higher rates of depression, anxiety disorders, and other mental health conditions.</p>

<h3>The Role of REM Sleep</h3>
<p>REM (Rapid Eye Movement) sleep plays a particularly important role in emotional regulation. During this stage, the brain processes emotional experiences from the day, helping to reduce their intensity and integrate them into memory.</p>

<h3>Practical Steps for Better Sleep</h3>
<ul>
<li>Maintain a consistent sleep schedule, even on weekends</li>
<li>Create a relaxing bedtime routine</li>
<li>Limit screen time in the hour before bed</li>
<li>Keep your bedroom cool, dark, and quiet</li>
<li>Avoid caffeine and alcohol close to bedtime</li>
</ul>

<blockquote>Sleep is not a luxury but a necessity for mental health. Treating it as optional is like treating food or water as optional.</blockquote>

<h3>When to Seek Help</h3>
<p>If sleep problems persist or significantly impact your daily functioning, consider consulting a healthcare provider. Conditions like sleep apnea, restless leg syndrome, or circadian rhythm disorders may require professional treatment.</p>`,
	},
	{
		Title:         "Best Habits to Improve Sleep Quality",
		Slug:          "best-habits-improve-sleep-quality",
		CategorySlug:  "lifestyle-habits",
		Excerpt:       "Transform your sleep with these scientifically-proven habits that can help you fall asleep faster, stay asleep longer, and wake up refreshed.",
		FeaturedImage: "https://images.unsplash.com/photo-1515894203077-9cd36032142f?w=800",
		ReadingTime:   7,
		IsFeatured:    true,
		Content: `<h2>Building a Foundation for Better Sleep</h2>
<p>Quality sleep isn't just about the hours you spend in bed—it's about the habits you cultivate throughout the day. These evidence-based strategies can transform your sleep quality.</p>

<h3>Morning Habits That Improve Night Sleep</h3>
<ul>
<li><strong>Get morning sunlight:</strong> Exposure to bright light within 30-60 minutes of waking helps regulate your circadian rhythm</li>
<li><strong>Exercise early:</strong> Morning workouts can improve sleep quality without interfering with falling asleep</li>
<li><strong>Eat a balanced breakfast:</strong> Proper nutrition supports stable energy and better sleep hormones</li>
</ul>

<h3>The 10-3-2-1 Rule</h3>
<ul>
<li><strong>10 hours before bed:</strong> No more caffeine</li>
<li><strong>3 hours before bed:</strong> No more food or alcohol</li>
<li><strong>2 hours before bed:</strong> No more work</li>
<li><strong>1 hour before bed:</strong> No more screens</li>
</ul>

<h3>Optimizing Your Sleep Environment</h3>
<ul>
<li>Temperature: Keep it between 65-68°F (18-20°C)</li>
<li>Darkness: Use blackout curtains or a sleep mask</li>
<li>Quiet: Consider white noise if you're in a noisy environment</li>
<li>Comfort: Invest in a quality mattress and pillows</li>
</ul>

<blockquote>Small changes in daily habits can lead to dramatic improvements in sleep quality over time.</blockquote>`,
	},
	{
		Title:         "How Stress Impacts Daily Productivity",
		Slug:          "how-stress-impacts-daily-productivity",
		CategorySlug:  "stress-anxiety",
		Excerpt:       "Understanding the relationship between stress and productivity can help you work smarter, not harder, while protecting your well-being.",
		FeaturedImage: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800",
		ReadingTime:   9,
		IsFeatured:    true,
		Content: `<h2>The Stress-Productivity Paradox</h2>
<p>A small amount of stress can enhance performance—this is known as eustress. However, chronic or excessive stress impairs cognitive function and decimates productivity. Understanding this balance is key to sustainable high performance.</p>

<h3>How Stress Affects Your Brain</h3>
<p>When stressed, your brain releases cortisol and adrenaline. While useful for immediate threats, these hormones impair:</p>
<ul>
<li><strong>Working memory:</strong> Your ability to hold and manipulate information</li>
<li><strong>Executive function:</strong> Planning, decision-making, and impulse control</li>
<li><strong>Attention:</strong> Focus and concentration on tasks</li>
<li><strong>Creativity:</strong> Novel problem-solving and innovative thinking</li>
</ul>

<h3>Evidence-Based Strategies</h3>
<p><strong>Time blocking:</strong> Schedule focused work periods with built-in breaks. The Pomodoro Technique (25 minutes of work, 5 minutes of rest) can help.</p>
<p><strong>Prioritization:</strong> Use frameworks like the Eisenhower Matrix to focus on what truly matters, reducing stress from feeling overwhelmed.</p>
<p><strong>Physical activity:</strong> Even a 10-minute walk can reduce stress hormones and improve cognitive function.</p>

<blockquote>Productivity isn't about working more hours—it's about optimizing the hours you work while protecting your capacity to perform.</blockquote>`,
	},
	{
		Title:         "Anxiety and Sleep: What Science Says",
		Slug:          "anxiety-sleep-what-science-says",
		CategorySlug:  "mental-health",
		Excerpt:       "Explore the scientific research on how anxiety affects sleep and vice versa, plus evidence-based strategies for breaking the cycle.",
		FeaturedImage: "https://images.unsplash.com/photo-1493836512294-502baa1986e2?w=800",
		ReadingTime:   8,
		Content: `<h2>The Anxiety-Sleep Connection</h2>
<p>Anxiety and sleep problems often go hand in hand, creating a challenging cycle. Research has revealed the biological and psychological mechanisms behind this relationship.</p>

<h3>How Anxiety Disrupts Sleep</h3>
<ul>
<li><strong>Hyperarousal:</strong> The nervous system remains in a heightened state</li>
<li><strong>Racing thoughts:</strong> The mind continues processing worries</li>
<li><strong>Physical tension:</strong> Muscle tension prevents physical relaxation</li>
<li><strong>Cortisol elevation:</strong> Stress hormones remain elevated</li>
</ul>

<h3>Research Findings</h3>
<p><strong>Brain imaging studies</strong> show that sleep-deprived individuals have 60% more activity in the amygdala when viewing emotional images.</p>
<p><strong>REM sleep deprivation</strong> specifically impairs emotional processing and is linked to increased anxiety symptoms.</p>

<h3>Breaking the Cycle</h3>
<p><strong>Cognitive Behavioral Therapy (CBT):</strong> Addresses both anxious thinking patterns and sleep behaviors. CBT-I (for insomnia) is particularly effective.</p>
<p><strong>Relaxation techniques:</strong> Progressive muscle relaxation, deep breathing, and meditation can reduce both anxiety and improve sleep.</p>

<blockquote>Understanding that anxiety and sleep problems are connected—not separate issues—is the first step toward effective treatment.</blockquote>`,
	},
	{
		Title:         "How to Improve Focus Without Medication",
		Slug:          "improve-focus-without-medication",
		CategorySlug:  "productivity-focus",
		Excerpt:       "Natural strategies and lifestyle changes that can significantly improve your ability to focus and concentrate throughout the day.",
		FeaturedImage: "https://images.unsplash.com/photo-1483058712412-4245e9b90334?w=800",
		ReadingTime:   9,
		Content: `<h2>Natural Focus Enhancement</h2>
<p>While medication can be helpful for some, many people can significantly improve their focus through natural methods. These evidence-based strategies work with your brain's natural processes.</p>

<h3>Sleep: The Foundation of Focus</h3>
<p>Sleep deprivation is one of the most significant impairments to focus. Even mild sleep restriction affects sustained attention, working memory, decision-making, and reaction time. Prioritizing 7-9 hours of quality sleep is perhaps the single most effective focus intervention.</p>

<h3>Environmental Optimization</h3>
<ul>
<li><strong>Minimize distractions:</strong> Phone in another room, browser blockers</li>
<li><strong>Optimize lighting:</strong> Natural light or full-spectrum bulbs</li>
<li><strong>Control noise:</strong> Silence, white noise, or instrumental music</li>
<li><strong>Temperature:</strong> Slightly cool environments promote alertness</li>
</ul>

<h3>Mental Training</h3>
<ul>
<li><strong>Meditation:</strong> Even 10 minutes daily improves attention over time</li>
<li><strong>Single-tasking:</strong> Practice focusing on one thing at a time</li>
<li><strong>Progressive challenges:</strong> Gradually increase focus duration</li>
</ul>

<blockquote>Improving focus is not about willpower—it's about creating conditions where focus becomes natural.</blockquote>`,
	},
	{
		Title:         "Sleep Myths Debunked",
		Slug:          "sleep-myths-debunked",
		CategorySlug:  "research-studies",
		Excerpt:       "Separating fact from fiction: common sleep myths that might be harming your rest, and what science actually tells us about sleep.",
		FeaturedImage: "https://images.unsplash.com/photo-1531353826977-0941b4779a1c?w=800",
		ReadingTime:   7,
		Content: `<h2>Common Sleep Myths</h2>
<p>Misinformation about sleep is widespread. Let's examine some common myths and what research actually shows.</p>

<h3>Myth 1: You Can Catch Up on Sleep Over the Weekend</h3>
<p><strong>Reality:</strong> While weekend sleep can partially reduce sleep debt, research shows it doesn't fully compensate for weekday sleep loss.</p>

<h3>Myth 2: Older Adults Need Less Sleep</h3>
<p><strong>Reality:</strong> Sleep needs don't significantly decrease with age. Older adults still need 7-8 hours. What changes is the ability to sleep, not the need.</p>

<h3>Myth 3: Alcohol Helps You Sleep</h3>
<p><strong>Reality:</strong> While alcohol may help you fall asleep faster, it reduces REM sleep, causes fragmented sleep as it metabolizes, and leads to more nighttime awakenings.</p>

<h3>Myth 4: If You Can't Sleep, Stay in Bed</h3>
<p><strong>Reality:</strong> Lying awake in bed can create an association between bed and wakefulness. If you can't sleep after 20 minutes, experts recommend getting up and doing something relaxing until you feel sleepy.</p>

<blockquote>Good sleep isn't about following rigid rules—it's about understanding your body and creating conditions that support natural, restorative rest.</blockquote>`,
	},
}
