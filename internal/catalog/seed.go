package catalog

// builtinWorlds returns the built-in course: five worlds covering content
// packaging from first concepts through the certification exam.
func builtinWorlds() []World {
	return []World{
		tutorialVillage(),
		contentCaverns(),
		packagePalace(),
		uploadFortress(),
		certificationTower(),
	}
}

func tutorialVillage() World {
	return World{
		ID:          1,
		Name:        "TUTORIAL VILLAGE",
		Description: "Learn the basics of PCTE and CMI5",
		NPC:         "elder",
		IntroText:   "Welcome, young trainer! Before you venture forth, you must learn the ancient ways of CMI5. These scrolls contain the knowledge you seek...",
		Lessons: []Lesson{
			{
				ID:          "w1_lesson1",
				Name:        "What is PCTE?",
				Description: "Understanding the Persistent Cyber Training Environment",
				XPReward:    50,
				StarReward:  1,
				Category:    CategoryContent,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "PCTE Overview",
						MediaFile:        "pcte_overview.mp4",
						MediaDescription: "Video showing the PCTE interface and explaining its purpose as a cyber training platform",
						Content:          "Watch this overview of the Persistent Cyber Training Environment (PCTE) to understand what it is and why we use it.",
						WatchPrompt:      "how PCTE provides a scalable training environment",
					},
					{
						Kind:    StepReflection,
						Phase:   PhaseReflection,
						Title:   "Understanding PCTE",
						Content: "PCTE (Persistent Cyber Training Environment) is a Department of Defense platform designed to provide realistic, scalable cyber training environments. It allows training developers to create and deploy interactive learning content that can be accessed by thousands of users simultaneously.",
						Prompts: []string{
							"What makes PCTE different from traditional training platforms?",
							"How might scalability benefit large-scale cyber training exercises?",
							"What types of training content might work well in PCTE?",
						},
						Summary: "PCTE provides the infrastructure; CMI5 provides the standard for tracking learning progress.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "PCTE Key Concepts",
						Content: "PCTE serves as a Learning Management System (LMS) that hosts and delivers training content. Understanding these key concepts is essential:",
						KeyPoints: []string{
							"PCTE uses the CMI5 standard for content packaging and tracking",
							"Training content is uploaded as ZIP packages containing course files",
							"The platform tracks learner progress through xAPI statements",
							"Content can include videos, interactive exercises, quizzes, and scenarios",
							"PCTE supports concurrent access by thousands of users",
						},
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Knowledge Check",
						Scenario: "You are planning a new cyber training course. A colleague asks why you would use PCTE instead of just sharing files on a network drive.",
						Question: "What is the BEST reason to use PCTE for cyber training?",
						Choices: []Choice{
							{Text: "PCTE has nicer graphics than network folders", Feedback: "While PCTE does provide a better interface, this is not the main advantage."},
							{Text: "PCTE provides standardized tracking, scalability, and interactive learning capabilities", Correct: true, Feedback: "PCTE offers tracking through CMI5/xAPI, scales to thousands of users, and supports interactive content types."},
							{Text: "Network drives are not secure enough for training", Feedback: "Security is important but not the primary differentiator for training delivery."},
							{Text: "PCTE is required by regulation for all training", Feedback: "While PCTE is preferred for DoD cyber training, it is not universally required."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w1_lesson2",
				Name:        "What is CMI5?",
				Description: "Understanding the CMI5 standard and xAPI",
				XPReward:    60,
				StarReward:  1,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "CMI5 Explained",
						MediaFile:        "cmi5_explained.mp4",
						MediaDescription: "Animated explainer video showing how CMI5 works as a bridge between content and LMS",
						Content:          "This video explains the CMI5 standard and how it enables communication between your training content and the PCTE learning management system.",
						WatchPrompt:      "the relationship between CMI5, xAPI, and the LMS",
					},
					{
						Kind:             StepImage,
						Phase:            PhaseReflection,
						Title:            "The CMI5 Workflow",
						MediaFile:        "cmi5_workflow_diagram.png",
						MediaDescription: "Flowchart showing: Content Package > LMS > Launch > xAPI Statements > LRS",
						Content:          "Study this diagram showing how CMI5 content flows through the system: the content creator packages training as a CMI5 ZIP file, an administrator uploads the package to PCTE, the learner launches the content from PCTE, the content sends xAPI statements to track progress, and the LMS records completion, scores, and status.",
						Callouts: []string{
							"The cmi5.xml file tells the LMS about your course structure",
							"xAPI statements are the \"language\" used to report progress",
							"The LMS handles authentication and session management",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "CMI5 Technical Foundation",
						Content: "CMI5 (Computer Managed Instruction, version 5) is a specification that defines how learning content communicates with an LMS. It builds on xAPI (Experience API, also called Tin Can API), which provides the statement format for tracking learning activities.",
						KeyPoints: []string{
							"CMI5 defines the \"launch\" mechanism - how the LMS starts your content",
							"CMI5 specifies required xAPI statements (initialized, completed, passed/failed, terminated)",
							"The cmi5.xml file describes your course structure to the LMS",
							"CMI5 content receives authentication tokens from the LMS at launch",
							"All tracking data is sent as xAPI statements to a Learning Record Store (LRS)",
						},
						CodeExample: `{
  "actor": { "name": "John Doe", "mbox": "mailto:john@example.com" },
  "verb": { "id": "http://adlnet.gov/expapi/verbs/completed" },
  "object": { "id": "https://example.com/course/module1" },
  "result": { "success": true, "score": { "scaled": 0.85 } }
}`,
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "CMI5 Components Check",
						Scenario: "You are reviewing a CMI5 package before upload. You need to verify it contains the required elements.",
						Question: "Which file is REQUIRED in every CMI5 package to describe the course to the LMS?",
						Choices: []Choice{
							{Text: "index.html", Feedback: "index.html is the content entry point, but not what describes the course structure to the LMS."},
							{Text: "manifest.xml", Feedback: "manifest.xml is used in SCORM, not CMI5."},
							{Text: "cmi5.xml", Correct: true, Feedback: "The cmi5.xml file is required and contains the course structure, AUs, and metadata."},
							{Text: "package.json", Feedback: "package.json is used in Node.js projects, not CMI5."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w1_lesson3",
				Name:        "CMI5 Package Structure",
				Description: "Understanding what goes in a CMI5 package",
				XPReward:    70,
				StarReward:  2,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:             StepImage,
						Phase:            PhaseExperience,
						Title:            "Inside a CMI5 Package",
						MediaFile:        "cmi5_package_structure.png",
						MediaDescription: "File tree showing: package.zip containing cmi5.xml, index.html, course.js, styles.css, images/, videos/",
						Content:          "A CMI5 package is simply a ZIP file containing your course files organized in a specific way. Examine this typical package structure to understand what files go where.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "Package Components",
						Content: "Every CMI5 package contains these essential components. The cmi5.xml course descriptor (REQUIRED) tells the LMS about your course: title, description, entry point, mastery score, and objectives. The entry point (e.g. index.html) is the HTML file the LMS will launch and must handle CMI5 launch parameters. Supporting files are everything else needed to run your course: scripts, styles, images, videos.",
						Prompts: []string{
							"Why must all files be contained within the ZIP package?",
							"What happens if cmi5.xml is missing or malformed?",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "The cmi5.xml File",
						Content: "The cmi5.xml file is the \"manifest\" that describes your course to the LMS. It contains:",
						KeyPoints: []string{
							"Course metadata (ID, title, description)",
							"Assignable Units (AUs) - the launchable content items",
							"Entry point URL for each AU",
							"Mastery score required to pass",
							"Move-on criteria (e.g., \"Passed\", \"Completed\")",
							"Learning objectives (optional but recommended)",
						},
						CodeExample: `<?xml version="1.0" encoding="UTF-8"?>
<courseStructure xmlns="https://w3id.org/xapi/profiles/cmi5/v1/CourseStructure.xsd">
    <course id="https://example.com/course">
        <title><langstring lang="en-US">My Training Course</langstring></title>
        <description><langstring lang="en-US">Course description here</langstring></description>
    </course>
    <au id="https://example.com/course/au1">
        <title><langstring lang="en-US">Module 1</langstring></title>
        <url>index.html</url>
        <launchMethod>AnyWindow</launchMethod>
        <moveOn>Passed</moveOn>
        <masteryScore>0.8</masteryScore>
    </au>
</courseStructure>`,
					},
					{
						Kind:         StepInteractive,
						Phase:        PhaseExperimentation,
						Title:        "CMI5 Package Creation Steps",
						Interactive:  InteractiveSequence,
						Instructions: "Arrange these steps in the correct order to create a valid CMI5 package.",
						Items: []string{
							"Create your course content files (HTML, JS, CSS)",
							"Create the cmi5.xml manifest describing your course structure",
							"Organize all files in a single folder (cmi5.xml at root level)",
							"Test your content locally in a browser",
							"Create a ZIP file of the folder contents (not the folder itself)",
							"Validate the package structure before upload",
						},
						RequiresCompletion: true,
					},
				},
			},
		},
		Boss: Boss{
			Name:            "CONFUSION SPECTER",
			HP:              300,
			XPReward:        150,
			StarReward:      5,
			Intro:           "I am the CONFUSION SPECTER! Many have fallen to my misleading questions about CMI5 basics. Do you truly understand the fundamentals?",
			ScenarioContext: "You are helping a new team member understand CMI5 for the first time. They have many questions...",
			Questions: []Question{
				{
					Context: "Your colleague asks: \"I keep hearing CMI5 and xAPI - are they the same thing?\"",
					Text:    "How do you explain the relationship between CMI5 and xAPI?",
					Choices: []Choice{
						{Text: "They are the same thing, just different names", Feedback: "CMI5 and xAPI are related but distinct. CMI5 is a profile/specification that uses xAPI for tracking.", Damage: 30},
						{Text: "CMI5 is a specification that defines how to use xAPI for LMS-launched content", Correct: true, Feedback: "Exactly! CMI5 builds on xAPI, defining specific requirements for LMS integration."},
						{Text: "xAPI replaced CMI5 as the newer standard", Feedback: "xAPI came first as a general tracking API. CMI5 was created later to standardize LMS usage.", Damage: 20},
						{Text: "CMI5 is only for videos, xAPI is for everything else", Feedback: "CMI5 supports all content types, not just videos.", Damage: 25},
					},
				},
				{
					Context: "They ask: \"What file do I absolutely need in my CMI5 package?\"",
					Text:    "Which file is the essential descriptor that every CMI5 package must contain?",
					Choices: []Choice{
						{Text: "package.json", Feedback: "package.json is for Node.js projects, not CMI5.", Damage: 25},
						{Text: "imsmanifest.xml", Feedback: "imsmanifest.xml is used in SCORM, not CMI5.", Damage: 20},
						{Text: "cmi5.xml", Correct: true, Feedback: "Correct! cmi5.xml is the required course structure file."},
						{Text: "config.xml", Feedback: "There is no config.xml in the CMI5 specification.", Damage: 25},
					},
				},
				{
					Context: "Finally they ask: \"What does PCTE actually do with my CMI5 package?\"",
					Text:    "What is the primary role of PCTE when hosting CMI5 content?",
					Choices: []Choice{
						{Text: "PCTE converts the content to a different format", Feedback: "PCTE does not convert content - it hosts and launches it as-is.", Damage: 20},
						{Text: "PCTE serves as the LMS - hosting content, managing launches, and tracking progress", Correct: true, Feedback: "Correct! PCTE is the Learning Management System that handles all aspects of content delivery."},
						{Text: "PCTE only stores the files for download", Feedback: "PCTE does much more than storage - it actively manages the learning experience.", Damage: 30},
						{Text: "PCTE edits the content to add tracking automatically", Feedback: "Content creators must implement tracking; PCTE does not modify content.", Damage: 25},
					},
				},
			},
		},
	}
}

func contentCaverns() World {
	return World{
		ID:          2,
		Name:        "CONTENT CAVERNS",
		Description: "Master the art of creating training content",
		NPC:         "miner",
		IntroText:   "Deep in these caverns lie the secrets of content creation! Videos, images, quizzes, and interactive elements await. Mine them wisely...",
		Lessons: []Lesson{
			{
				ID:          "w2_lesson1",
				Name:        "Video Content",
				Description: "Creating and integrating training videos",
				XPReward:    60,
				StarReward:  1,
				Category:    CategoryContent,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "Video Best Practices",
						MediaFile:        "video_best_practices.mp4",
						MediaDescription: "Demonstration of effective training video techniques: clear audio, good pacing, visual annotations",
						Content:          "Watch this example of an effective training video and note the techniques used.",
						WatchPrompt:      "the pacing, visual elements, and engagement techniques",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "What Makes a Good Training Video?",
						Content: "Effective training videos share common characteristics: clear audio from a quality microphone with minimal background noise, concise duration (under 10 minutes; 5-7 is ideal), visual engagement through annotations, highlights, and zoom, a logical introduction-content-summary structure, and an accessible format (MP4 with H.264 codec for broad compatibility).",
						Prompts: []string{
							"What video length would work best for your training topic?",
							"How can you make screen recordings more engaging?",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Video Technical Requirements",
						Content: "For PCTE/CMI5 compatibility, follow these technical specifications:",
						KeyPoints: []string{
							"Format: MP4 container with H.264 video codec",
							"Audio: AAC codec, stereo, 128-256 kbps",
							"Resolution: 1080p (1920x1080) recommended, 720p minimum",
							"Frame rate: 30fps for most content, 60fps for fast demonstrations",
							"File size: Keep under 100MB for web delivery; compress if needed",
							"Aspect ratio: 16:9 for best display compatibility",
						},
						CodeExample: `<video id="trainingVideo" controls>
    <source src="videos/training.mp4" type="video/mp4">
</video>

<script>
video.addEventListener('ended', () => {
    sendXAPI('completed', 'video');
});
</script>`,
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Video Format Check",
						Scenario: "You have a training video that is 250MB in size and encoded in AVI format. You need to prepare it for PCTE.",
						Question: "What should you do to prepare this video for CMI5 deployment?",
						Choices: []Choice{
							{Text: "Upload it as-is; PCTE will convert it automatically", Feedback: "PCTE does not convert video formats. Content must be web-ready before upload."},
							{Text: "Convert to MP4 (H.264), compress to under 100MB, verify 16:9 aspect ratio", Correct: true, Feedback: "Correct! Converting to MP4 ensures compatibility, compression improves loading, and 16:9 ensures proper display."},
							{Text: "Just rename the file from .avi to .mp4", Feedback: "Renaming does not convert the codec. The file must be properly re-encoded."},
							{Text: "Split it into 10 smaller AVI files", Feedback: "Multiple AVI files would still have format compatibility issues."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w2_lesson2",
				Name:        "Images and Screenshots",
				Description: "Creating effective visual content",
				XPReward:    50,
				StarReward:  1,
				Category:    CategoryContent,
				Steps: []Step{
					{
						Kind:             StepImage,
						Phase:            PhaseExperience,
						Title:            "Effective Screenshots",
						MediaFile:        "screenshot_example_good.png",
						MediaDescription: "Side-by-side comparison: cluttered screenshot vs. annotated, focused screenshot with callouts",
						Content:          "Compare these two screenshots. The effective one uses a focused area cropped to relevant content, clear annotations and numbered callouts, highlighted areas of interest, and readable text and UI elements.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Image Best Practices",
						Content: "Follow these guidelines for training images:",
						KeyPoints: []string{
							"Format: PNG for screenshots/diagrams, JPG for photos",
							"Resolution: Minimum 1200px width for readability",
							"File size: Optimize to under 500KB per image",
							"Annotations: Use contrasting colors, numbered callouts",
							"Alt text: Always provide descriptive alt text for accessibility",
							"Consistency: Use the same annotation style throughout",
						},
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Image Selection",
						Scenario: "You need to show users how to navigate a complex menu system with 5 steps.",
						Question: "What is the BEST approach for presenting this information?",
						Choices: []Choice{
							{Text: "One screenshot showing the final result only", Feedback: "Users need to see each step, not just the end result."},
							{Text: "Five separate screenshots, each with numbered annotations for that step", Correct: true, Feedback: "Breaking complex procedures into annotated steps improves comprehension and retention."},
							{Text: "A single, very large screenshot with all menus visible", Feedback: "Large, cluttered images are hard to follow and may not display well."},
							{Text: "Text-only instructions without images", Feedback: "Visual learners benefit greatly from screenshots, especially for UI navigation."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w2_lesson3",
				Name:        "Interactive Elements",
				Description: "Creating quizzes, scenarios, and interactions",
				XPReward:    80,
				StarReward:  2,
				Category:    CategoryCode,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "Interactive Content Demo",
						MediaFile:        "interactive_demo.mp4",
						MediaDescription: "Demo of various interactive elements: multiple choice quiz, drag-and-drop, branching scenario",
						Content:          "Watch this demonstration of interactive training elements that increase learner engagement.",
						WatchPrompt:      "the different types of interactions and when each might be appropriate",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "Types of Interactive Elements",
						Content: "Interactive elements transform passive content into active learning experiences. Multiple choice quizzes suit knowledge checks and assessments, tracking score and pass/fail. Drag and drop suits categorization, matching, and sequencing, tracking completion and accuracy. Branching scenarios suit decision-making with consequences, tracking the path taken and outcomes. Simulations suit procedural practice and tool familiarity, tracking actions and completion time.",
						Prompts: []string{
							"Which interactive type would work best for your training content?",
							"How can you balance engagement with learning objectives?",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Implementing Quizzes",
						Content: "A well-designed quiz includes:",
						KeyPoints: []string{
							"Question bank larger than questions shown (enables randomization)",
							"Shuffled answer order (prevents pattern memorization)",
							"Clear feedback for correct and incorrect answers",
							"Mastery threshold (typically 80%)",
							"xAPI statements for pass/fail with score",
						},
						CodeExample: `const questionBank = [
    {
        text: "What is the required CMI5 descriptor file?",
        choices: [
            { text: "cmi5.xml", correct: true },
            { text: "manifest.xml", correct: false },
            { text: "config.json", correct: false },
            { text: "package.xml", correct: false }
        ]
    }
];

function shuffle(array) {
    for (let i = array.length - 1; i > 0; i--) {
        const j = Math.floor(Math.random() * (i + 1));
        [array[i], array[j]] = [array[j], array[i]];
    }
    return array;
}`,
					},
					{
						Kind:         StepInteractive,
						Phase:        PhaseExperimentation,
						Title:        "Match the Interaction",
						Interactive:  InteractiveMatching,
						Instructions: "Match each learning goal with the best interactive element type.",
						Pairs: []Pair{
							{Left: "Test factual knowledge", Right: "Multiple Choice Quiz"},
							{Left: "Practice categorizing items", Right: "Drag and Drop"},
							{Left: "Experience decision consequences", Right: "Branching Scenario"},
							{Left: "Learn software procedures", Right: "Simulation"},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w2_lesson4",
				Name:        "Kolb Learning Integration",
				Description: "Designing content using Kolb's model",
				XPReward:    70,
				StarReward:  2,
				Category:    CategoryContent,
				Steps: []Step{
					{
						Kind:             StepImage,
						Phase:            PhaseExperience,
						Title:            "Kolb's Learning Cycle",
						MediaFile:        "kolb_cycle_diagram.png",
						MediaDescription: "Circular diagram showing: Concrete Experience > Reflective Observation > Abstract Conceptualization > Active Experimentation > (back to start)",
						Content:          "David Kolb's Experiential Learning Cycle describes how people learn most effectively through a four-stage process. This course itself follows Kolb's model - notice how each lesson progresses through these phases!",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "The Four Stages",
						Content: "Concrete Experience is learning through direct experience: demos, videos, hands-on activities. Reflective Observation is reviewing and analyzing the experience: discussion questions, observations. Abstract Conceptualization is forming theories and rules: key concepts, principles, documentation. Active Experimentation is testing understanding through action: practice exercises, quizzes, scenarios.",
						Prompts: []string{
							"Which phase do you find most valuable for your own learning?",
							"How can you ensure your content addresses all four phases?",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Applying Kolb's Model",
						Content: "Structure your CMI5 content to move learners through all four phases:",
						KeyPoints: []string{
							"Start with a video or demo (Concrete Experience)",
							"Follow with reflection questions or analysis (Reflective Observation)",
							"Present the theory, rules, or key points (Abstract Conceptualization)",
							"End with a practice exercise or quiz (Active Experimentation)",
							"Complete the cycle - the next lesson can build on experimentation results",
						},
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Design a Learning Sequence",
						Scenario: "You are creating a lesson about configuring firewall rules. You want to follow Kolb's model.",
						Question: "What should be the FIRST element of your lesson?",
						Choices: []Choice{
							{Text: "A list of all firewall rule syntax options", Feedback: "Starting with abstract rules skips the experience phase. Learners benefit from seeing before reading."},
							{Text: "A video demonstrating a firewall rule being configured", Correct: true, Feedback: "Starting with a concrete demonstration gives learners an experience to reflect on before diving into theory."},
							{Text: "A quiz testing prior firewall knowledge", Feedback: "Testing before teaching doesn't follow the experiential learning cycle."},
							{Text: "A text block explaining the importance of firewalls", Feedback: "While context is important, leading with a concrete example is more engaging."},
						},
						RequiresCompletion: true,
					},
				},
			},
		},
		Boss: Boss{
			Name:            "CHAOS CREATOR",
			HP:              400,
			XPReward:        200,
			StarReward:      6,
			Intro:           "I am the CHAOS CREATOR! I fill training with confusion, poor videos, and meaningless interactions. Can you design content that defeats me?",
			ScenarioContext: "A stakeholder has reviewed your draft training course and has concerns. Address each one correctly.",
			Questions: []Question{
				{
					Context: "\"The training video is 45 minutes long. Is that okay?\"",
					Text:    "How should you advise them about video length?",
					Choices: []Choice{
						{Text: "That's fine - longer is more thorough", Feedback: "Research shows learner engagement drops significantly after 10 minutes.", Damage: 30},
						{Text: "Break it into 5-7 minute segments with checkpoints between each", Correct: true, Feedback: "Chunking content into shorter videos improves retention and allows progress tracking."},
						{Text: "Remove the video entirely and use text instead", Feedback: "Video is valuable for demonstrations; it just needs to be properly segmented.", Damage: 25},
						{Text: "Speed up the video to make it shorter", Feedback: "Speeding up makes content harder to follow without improving learning.", Damage: 35},
					},
				},
				{
					Context: "\"The quiz only has 5 questions and they're always in the same order.\"",
					Text:    "What improvement would you recommend?",
					Choices: []Choice{
						{Text: "Add more questions but keep the same order", Feedback: "A larger bank is good, but fixed order allows pattern memorization.", Damage: 20},
						{Text: "Create a larger question bank (10-15) and randomize both question selection and answer order", Correct: true, Feedback: "Randomization from a larger pool prevents memorization and better tests true understanding."},
						{Text: "Remove the quiz since it can be gamed anyway", Feedback: "Quizzes are valuable for assessment; they just need proper design.", Damage: 30},
						{Text: "Make all questions fill-in-the-blank instead", Feedback: "Question format variety helps, but doesn't address the randomization issue.", Damage: 25},
					},
				},
				{
					Context: "\"I want to add a scenario-based section. When in the lesson should it appear?\"",
					Text:    "Based on Kolb's model, where should a practice scenario be placed?",
					Choices: []Choice{
						{Text: "At the very beginning to capture interest", Feedback: "Learners need context before practice; placing scenarios first skips crucial phases.", Damage: 25},
						{Text: "In the middle, mixed with the theory content", Feedback: "Mixing experimentation with conceptualization can confuse learners.", Damage: 20},
						{Text: "After the learner has experienced, reflected, and learned the concepts", Correct: true, Feedback: "Active Experimentation comes after the other three phases in Kolb's cycle."},
						{Text: "Scenarios don't fit Kolb's model", Feedback: "Scenarios are perfect for the Active Experimentation phase.", Damage: 30},
					},
				},
				{
					Context: "\"How do I know if learners are actually watching the video or just skipping ahead?\"",
					Text:    "What technical feature addresses this concern?",
					Choices: []Choice{
						{Text: "Add a loud sound at the end of the video", Feedback: "This doesn't prevent skipping; it just alerts them when they reach the end.", Damage: 25},
						{Text: "Implement video progress tracking that prevents skipping ahead of watched position", Correct: true, Feedback: "Tracking maximum watched position and requiring 90%+ completion ensures engagement."},
						{Text: "Trust that learners will watch it", Feedback: "While trust is nice, verification is better for required training.", Damage: 20},
						{Text: "Remove video controls entirely", Feedback: "This hurts usability; learners should be able to pause and rewind.", Damage: 30},
					},
				},
			},
		},
	}
}

func packagePalace() World {
	return World{
		ID:          3,
		Name:        "PACKAGE PALACE",
		Description: "Master the art of CMI5 packaging",
		NPC:         "royal",
		IntroText:   "Welcome to the PACKAGE PALACE! Here you shall learn the royal protocols of CMI5 packaging. The XML scrolls contain powerful knowledge...",
		Lessons: []Lesson{
			{
				ID:          "w3_lesson1",
				Name:        "Creating cmi5.xml",
				Description: "Writing the course structure file",
				XPReward:    80,
				StarReward:  2,
				Category:    CategoryCode,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "cmi5.xml Walkthrough",
						MediaFile:        "cmi5xml_walkthrough.mp4",
						MediaDescription: "Screen recording showing creation of cmi5.xml file in a text editor with explanation of each section",
						Content:          "Watch as we create a cmi5.xml file from scratch, explaining each required element.",
						WatchPrompt:      "the structure and how each element is defined",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "cmi5.xml Structure Analysis",
						Content: "The cmi5.xml file has a hierarchical structure: a courseStructure root holding a course element (course metadata with title and description) and one or more au elements (assignable units, the launchable content) each carrying a title, description, url entry point, launchMethod, moveOn, masteryScore, and optional objectives.",
						Prompts: []string{
							"Why does each AU need its own unique ID?",
							"What happens if masteryScore is not set?",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "cmi5.xml Elements Reference",
						Content: "Key elements and their requirements:",
						KeyPoints: []string{
							`<course id="..."> - Unique identifier (URL format recommended)`,
							`<title><langstring lang="en-US">...</langstring></title> - Human-readable name`,
							`<au id="..."> - Each Assignable Unit needs a unique ID`,
							`<url>index.html</url> - Entry point file path (relative to package root)`,
							`<launchMethod>AnyWindow</launchMethod> - How content opens (AnyWindow or OwnWindow)`,
							`<moveOn>Passed</moveOn> - When AU is considered complete (Passed, Completed, CompletedOrPassed, CompletedAndPassed, NotApplicable)`,
							`<masteryScore>0.8</masteryScore> - Score needed to pass (0.0 to 1.0)`,
						},
						CodeExample: `<?xml version="1.0" encoding="UTF-8"?>
<courseStructure xmlns="https://w3id.org/xapi/profiles/cmi5/v1/CourseStructure.xsd">
    <course id="https://myorg.mil/training/cybersecurity-101">
        <title>
            <langstring lang="en-US">Cybersecurity Fundamentals</langstring>
        </title>
        <description>
            <langstring lang="en-US">Introduction to cybersecurity concepts and best practices.</langstring>
        </description>
    </course>

    <au id="https://myorg.mil/training/cybersecurity-101/module1">
        <title>
            <langstring lang="en-US">Module 1: Security Basics</langstring>
        </title>
        <description>
            <langstring lang="en-US">Learn fundamental security concepts.</langstring>
        </description>
        <url>index.html</url>
        <launchMethod>AnyWindow</launchMethod>
        <moveOn>Passed</moveOn>
        <masteryScore>0.8</masteryScore>
    </au>
</courseStructure>`,
					},
					{
						Kind:  StepPractice,
						Phase: PhaseExperimentation,
						Title: "Spot the Error",
						Scenario: `Review this cmi5.xml snippet and identify the problem:

<au id="module1">
  <title>Module 1</title>
  <url>content/index.html</url>
</au>`,
						Question: "What is WRONG with this AU definition?",
						Choices: []Choice{
							{Text: `The id should be a full URL, not just "module1"`, Feedback: "While full URLs are recommended, short IDs can work. There's another issue."},
							{Text: "The title element is missing the langstring wrapper", Correct: true, Feedback: `Correct! Titles must use <langstring lang="en-US">Title Text</langstring> format.`},
							{Text: "The url cannot be in a subfolder", Feedback: "URLs can reference files in subfolders. The path is fine."},
							{Text: "There's nothing wrong with this snippet", Feedback: "There is an error - the title format is incorrect."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w3_lesson2",
				Name:        "CMI5 JavaScript Integration",
				Description: "Implementing xAPI tracking in your content",
				XPReward:    90,
				StarReward:  2,
				Category:    CategoryCode,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "CMI5 JavaScript Demo",
						MediaFile:        "cmi5_javascript_demo.mp4",
						MediaDescription: "Live coding demo showing initialization of CMI5, sending xAPI statements, and handling completion",
						Content:          "Watch how to implement CMI5 tracking in your course JavaScript.",
						WatchPrompt:      "the initialization flow and when each statement is sent",
					},
					{
						Kind:    StepText,
						Phase:   PhaseReflection,
						Title:   "CMI5 Launch Flow",
						Content: "When the LMS launches your content, it passes parameters in the URL: fetch (URL to retrieve the authentication token), endpoint (LRS endpoint for xAPI statements), actor (the learner's identity as JSON), registration (session registration ID), and activityId (the AU's identifier). Your content must parse these, authenticate, and send proper statements.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Required xAPI Statements",
						Content: "CMI5 requires these statements in order:",
						KeyPoints: []string{
							"initialized - Sent once when content launches and auth completes",
							"completed - Sent when learner finishes the content (optional based on moveOn)",
							"passed OR failed - Sent when assessment is scored (required if moveOn is Passed)",
							"terminated - Sent when learner exits (MUST be final statement)",
						},
						CodeExample: `async function initCmi5() {
    const params = new URLSearchParams(window.location.search);
    const fetchUrl = params.get('fetch');
    const endpoint = params.get('endpoint');

    const response = await fetch(fetchUrl, { method: 'POST' });
    const data = await response.json();
    const auth = data['auth-token'];

    await sendStatement('http://adlnet.gov/expapi/verbs/initialized');
}

async function sendStatement(verb, result = null) {
    const statement = {
        actor: JSON.parse(decodeURIComponent(actor)),
        verb: { id: verb },
        object: { id: activityId, objectType: 'Activity' },
        context: { registration: registration }
    };
    if (result) statement.result = result;

    await fetch(endpoint + 'statements', {
        method: 'POST',
        headers: {
            'Content-Type': 'application/json',
            'Authorization': 'Basic ' + auth,
            'X-Experience-API-Version': '1.0.3'
        },
        body: JSON.stringify(statement)
    });
}`,
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Statement Order",
						Scenario: "Your course needs to track: course start, video watched, quiz passed, and course exit.",
						Question: "Which statement MUST be sent last according to CMI5 spec?",
						Choices: []Choice{
							{Text: "completed", Feedback: "Completed can be sent before the final statement."},
							{Text: "passed", Feedback: "Passed is important but not required to be last."},
							{Text: "terminated", Correct: true, Feedback: "Correct! The terminated statement MUST be the final statement sent in any CMI5 session."},
							{Text: "initialized", Feedback: "Initialized is the first statement, not the last."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w3_lesson3",
				Name:        "Packaging and Validation",
				Description: "Creating the final ZIP package",
				XPReward:    70,
				StarReward:  2,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "Packaging Walkthrough",
						MediaFile:        "packaging_walkthrough.mp4",
						MediaDescription: "Screen recording showing: file organization, ZIP creation, validation testing",
						Content:          "Watch the complete process of packaging a CMI5 course for upload.",
						WatchPrompt:      "the file structure and common mistakes to avoid",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Packaging Checklist",
						Content: "Before creating your ZIP package, verify:",
						KeyPoints: []string{
							"cmi5.xml is at the root level (not in a subfolder)",
							"Entry point file (index.html) exists at the path specified in cmi5.xml",
							"All referenced resources (images, videos, CSS, JS) are included",
							"File paths use forward slashes, not backslashes",
							"No absolute URLs - all resources should be relative paths",
							"ZIP created without extra wrapper folder (cmi5.xml should be at top level when extracted)",
						},
					},
					{
						Kind:             StepImage,
						Phase:            PhaseReflection,
						Title:            "Common Packaging Mistakes",
						MediaFile:        "packaging_mistakes.png",
						MediaDescription: "Side-by-side showing WRONG (files in subfolder) vs RIGHT (cmi5.xml at root)",
						Content:          "The most common mistake is creating a ZIP with an extra folder level. WRONG: package.zip containing my_course/cmi5.xml and my_course/index.html. CORRECT: package.zip containing cmi5.xml and index.html at the top level.",
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Validation Check",
						Scenario: "You've created a ZIP package and want to verify it's correct before uploading to PCTE.",
						Question: "What is the FIRST thing you should check when you extract the ZIP?",
						Choices: []Choice{
							{Text: "That index.html opens in a browser", Feedback: "Checking content is good, but first verify the structure."},
							{Text: "That cmi5.xml is at the root level, not inside a subfolder", Correct: true, Feedback: "Correct! The most common error is having cmi5.xml nested in a folder. Always verify this first."},
							{Text: "That the total file size is under 100MB", Feedback: "Size matters for upload limits, but structure must be verified first."},
							{Text: "That all images display correctly", Feedback: "Image display is important but secondary to package structure."},
						},
						RequiresCompletion: true,
					},
				},
			},
		},
		Boss: Boss{
			Name:            "XML WARLOCK",
			HP:              450,
			XPReward:        225,
			StarReward:      7,
			Intro:           "I am the XML WARLOCK! My malformed tags and missing attributes have doomed many packages. Can your XML withstand my scrutiny?",
			ScenarioContext: "Your colleague has created a CMI5 package that isn't working. Debug each issue they present.",
			Questions: []Question{
				{
					Context: "\"The LMS says it can't find my course structure. Here's my ZIP contents: package.zip > training_folder > cmi5.xml, index.html\"",
					Text:    "What is the problem with this package structure?",
					Choices: []Choice{
						{Text: "The ZIP file name should be cmi5.zip", Feedback: "ZIP filename doesn't matter. The internal structure is the problem.", Damage: 25},
						{Text: "cmi5.xml must be at the ZIP root, not inside a subfolder", Correct: true, Feedback: "Correct! The LMS looks for cmi5.xml at the root level of the extracted ZIP."},
						{Text: "You need to add a manifest.xml file too", Feedback: "CMI5 doesn't use manifest.xml - that's SCORM.", Damage: 30},
						{Text: "The folder name should be \"cmi5_content\"", Feedback: "Folder names don't matter; the issue is that there shouldn't be a wrapper folder at all.", Damage: 20},
					},
				},
				{
					Context: "\"My course launches but never shows as completed in PCTE. Here's my JavaScript: function finish() { alert('Done!'); }\"",
					Text:    "Why isn't the course marking as complete?",
					Choices: []Choice{
						{Text: "The alert message is wrong", Feedback: "The message content doesn't affect LMS tracking.", Damage: 25},
						{Text: "The function needs to send xAPI completed and terminated statements to the LMS", Correct: true, Feedback: "Correct! Without sending proper xAPI statements, the LMS has no way to know the course is complete."},
						{Text: "PCTE doesn't support JavaScript", Feedback: "PCTE fully supports JavaScript content.", Damage: 30},
						{Text: "The function name should be completeCourse()", Feedback: "Function names are arbitrary; the issue is missing xAPI integration.", Damage: 20},
					},
				},
				{
					Context: "\"I set masteryScore to 80 but learners are passing with 50%. Why?\"",
					Text:    "What is wrong with the masteryScore setting?",
					Choices: []Choice{
						{Text: "masteryScore should be 80%, not 80", Feedback: "CMI5 uses decimal format, not percentage.", Damage: 20},
						{Text: "masteryScore uses a 0.0-1.0 scale, so 80% should be 0.8, not 80", Correct: true, Feedback: "Correct! CMI5 uses scaled scores where 1.0 = 100%. A value of 80 would be invalid."},
						{Text: "PCTE ignores masteryScore settings", Feedback: "PCTE respects masteryScore; it just needs to be in the correct format.", Damage: 30},
						{Text: "You need to set it in both cmi5.xml and JavaScript", Feedback: "masteryScore in cmi5.xml is sufficient; the issue is the value format.", Damage: 25},
					},
				},
			},
		},
	}
}

func uploadFortress() World {
	return World{
		ID:          4,
		Name:        "UPLOAD FORTRESS",
		Description: "Learn to upload and manage content in PCTE",
		NPC:         "guard",
		IntroText:   "You approach the UPLOAD FORTRESS! Only those who understand the upload protocols may enter. Prove your worth!",
		Lessons: []Lesson{
			{
				ID:          "w4_lesson1",
				Name:        "PCTE Navigation",
				Description: "Finding your way around PCTE",
				XPReward:    60,
				StarReward:  1,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "PCTE Interface Tour",
						MediaFile:        "pcte_interface_tour.mp4",
						MediaDescription: "Screen recording navigating through PCTE: login, dashboard, content management, user areas",
						Content:          "Watch this tour of the PCTE interface to familiarize yourself with the platform.",
						WatchPrompt:      "where content management options are located",
					},
					{
						Kind:             StepImage,
						Phase:            PhaseReflection,
						Title:            "PCTE Dashboard",
						MediaFile:        "pcte_dashboard.png",
						MediaDescription: "Annotated screenshot of PCTE dashboard with callouts for: Navigation menu, Content area, User info, Help",
						Content:          "The PCTE dashboard provides access to key areas:",
						Callouts: []string{
							"Main navigation menu (left side)",
							"Content management area",
							"User profile and settings",
							"Help and documentation links",
						},
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "PCTE Access Requirements",
						Content: "Before uploading content to PCTE, ensure you have:",
						KeyPoints: []string{
							"Valid PCTE account with content creator/admin permissions",
							"Access to the specific training environment/instance",
							"Completed CMI5 package ready for upload",
							"Knowledge of where the content should be categorized",
							"Testing plan for post-upload validation",
						},
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Access Check",
						Scenario: "You try to upload content to PCTE but don't see the upload option.",
						Question: "What is the MOST likely cause?",
						Choices: []Choice{
							{Text: "PCTE is down for maintenance", Feedback: "If PCTE were down, you wouldn't be able to log in at all."},
							{Text: "Your account lacks content creator/administrator permissions", Correct: true, Feedback: "Upload options are only visible to users with appropriate permissions."},
							{Text: "Your browser is incompatible", Feedback: "Browser issues would affect more than just upload visibility."},
							{Text: "The content is too large", Feedback: "Size limits wouldn't hide the upload option entirely."},
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w4_lesson2",
				Name:        "Uploading Content",
				Description: "Step-by-step upload process",
				XPReward:    80,
				StarReward:  2,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:             StepVideo,
						Phase:            PhaseExperience,
						Title:            "Upload Process Demo",
						MediaFile:        "upload_process_demo.mp4",
						MediaDescription: "Complete walkthrough: selecting upload, choosing file, filling metadata, confirming, checking status",
						Content:          "Watch the complete upload process from start to finish.",
						WatchPrompt:      "each step and what information is required",
					},
					{
						Kind:             StepImage,
						Phase:            PhaseReflection,
						Title:            "Upload Workflow",
						MediaFile:        "upload_workflow.png",
						MediaDescription: "Flowchart: Select Upload > Choose ZIP > Enter Metadata > Confirm > Processing > Validation > Ready",
						Content:          "The upload workflow has these stages: navigate to content management, select \"Upload CMI5 Package\", choose your ZIP file, enter or confirm metadata (title, description, category), submit and wait for processing, review validation results, and test the deployed content.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Upload Requirements",
						Content: "PCTE upload requirements:",
						KeyPoints: []string{
							"Package must be a valid ZIP file",
							"Maximum file size varies by instance (typically 100-500MB)",
							"cmi5.xml must be valid and at package root",
							"All referenced resources must be included",
							"Metadata fields (title, description) may be required",
							"Processing time depends on package size and complexity",
						},
					},
					{
						Kind:         StepInteractive,
						Phase:        PhaseExperimentation,
						Title:        "Upload Sequence",
						Interactive:  InteractiveSequence,
						Instructions: "Arrange these upload steps in the correct order.",
						Items: []string{
							"Navigate to Content Management in PCTE",
							"Click \"Upload CMI5 Package\" or equivalent option",
							"Select your prepared ZIP file",
							"Enter or verify course metadata",
							"Click Upload/Submit and wait for processing",
							"Review validation results for errors",
							"Test the content as a learner",
						},
						RequiresCompletion: true,
					},
				},
			},
			{
				ID:          "w4_lesson3",
				Name:        "Troubleshooting Uploads",
				Description: "Diagnosing and fixing common upload issues",
				XPReward:    90,
				StarReward:  2,
				Category:    CategoryConfig,
				Steps: []Step{
					{
						Kind:    StepText,
						Phase:   PhaseExperience,
						Title:   "Common Upload Errors",
						Content: "You will encounter these errors. Learn to recognize and fix them. \"cmi5.xml not found\": cmi5.xml is missing or in a subfolder; ensure it is at the ZIP root level. \"Invalid XML structure\": malformed XML or missing required elements; validate against the CMI5 schema and check for typos. \"Entry point not found\": the URL in cmi5.xml doesn't match the actual file location; verify the url element matches your file path. \"File too large\": the package exceeds the size limit; compress videos, optimize images, or split into modules.",
					},
					{
						Kind:    StepText,
						Phase:   PhaseConceptualization,
						Title:   "Troubleshooting Strategy",
						Content: "When uploads fail, follow this diagnostic process:",
						KeyPoints: []string{
							"Read the error message carefully - it usually indicates the problem",
							"Extract your ZIP and verify cmi5.xml is at root level",
							"Validate your cmi5.xml with an XML validator",
							"Check that all file paths in cmi5.xml match actual files",
							"Verify file sizes are within limits",
							"Test your content locally before uploading (open index.html)",
							"If all else fails, start with a known-good template",
						},
					},
					{
						Kind:     StepPractice,
						Phase:    PhaseExperimentation,
						Title:    "Diagnose This Error",
						Scenario: "Upload fails with error: \"URL entry point 'content/index.html' not found in package\"",
						Question: "What is the MOST likely cause?",
						Choices: []Choice{
							{Text: "The file index.html doesn't exist at all", Feedback: "Possible, but there's a more specific issue indicated by the path."},
							{Text: "index.html exists at package root, but cmi5.xml says it's in \"content/\" folder", Correct: true, Feedback: "Correct! The path in <url> must match the actual file location in the ZIP."},
							{Text: "PCTE doesn't support HTML files", Feedback: "PCTE fully supports HTML entry points."},
							{Text: "The URL should use backslashes instead of forward slashes", Feedback: "URLs should use forward slashes, which is correct in the error message."},
						},
						RequiresCompletion: true,
					},
				},
			},
		},
		Boss: Boss{
			Name:            "UPLOAD GUARDIAN",
			HP:              500,
			XPReward:        250,
			StarReward:      8,
			Intro:           "I am the UPLOAD GUARDIAN! Many packages have been rejected at my gates. Only those with perfect packages may pass!",
			ScenarioContext: "You're helping team members troubleshoot their PCTE upload issues. Solve each problem.",
			Questions: []Question{
				{
					Context: "\"I uploaded my course yesterday but it still says 'Processing'. It's been 24 hours!\"",
					Text:    "What should they try first?",
					Choices: []Choice{
						{Text: "Wait another 24 hours - processing can take time", Feedback: "While some processing takes time, 24 hours is excessive for most packages.", Damage: 25},
						{Text: "Check the processing/validation log for errors that may have halted processing", Correct: true, Feedback: "Correct! \"Stuck\" processing often means a silent error occurred. Check logs for details."},
						{Text: "Delete and re-upload the exact same file", Feedback: "Re-uploading the same file will likely produce the same result.", Damage: 20},
						{Text: "Contact IT to restart the PCTE server", Feedback: "Server restarts are rarely needed for individual upload issues.", Damage: 30},
					},
				},
				{
					Context: "\"The course uploaded but when I launch it, I just see a blank white page.\"",
					Text:    "What is the MOST likely cause?",
					Choices: []Choice{
						{Text: "PCTE doesn't support their browser", Feedback: "Browser issues would affect more than just this one course.", Damage: 25},
						{Text: "JavaScript errors in the content - check browser console for details", Correct: true, Feedback: "Correct! A blank page usually means JavaScript failed to execute. Browser console will show the error."},
						{Text: "The video file is too large", Feedback: "Large videos might load slowly but wouldn't cause a completely blank page.", Damage: 20},
						{Text: "The masteryScore is set incorrectly", Feedback: "masteryScore affects completion tracking, not initial page display.", Damage: 25},
					},
				},
				{
					Context: "\"My course works when I open index.html locally, but fails in PCTE.\"",
					Text:    "What is different about the PCTE environment that could cause this?",
					Choices: []Choice{
						{Text: "PCTE uses a different HTML version", Feedback: "HTML standards are the same; the difference is in how the content is launched.", Damage: 25},
						{Text: "PCTE launches with CMI5 parameters that the content may not be handling properly", Correct: true, Feedback: "Correct! Local testing doesn't include CMI5 launch parameters. The content may fail when trying to parse/use them."},
						{Text: "PCTE automatically compresses all content", Feedback: "PCTE doesn't compress or modify content.", Damage: 30},
						{Text: "Local and server JavaScript work differently", Feedback: "JavaScript execution is similar, but the CMI5 context is the key difference.", Damage: 20},
					},
				},
				{
					Context: "\"Learners complete the course but it doesn't show as 'Passed' in their records.\"",
					Text:    "What is likely missing from the course code?",
					Choices: []Choice{
						{Text: "The CSS styling for the completion message", Feedback: "CSS affects display, not LMS tracking.", Damage: 25},
						{Text: "xAPI statements to send passed/completed status to the LMS", Correct: true, Feedback: "Correct! The content must explicitly send xAPI statements for the LMS to record completion/pass status."},
						{Text: "A certificate download feature", Feedback: "Certificates are separate from completion tracking.", Damage: 30},
						{Text: "A \"Mark Complete\" button", Feedback: "UI buttons alone don't affect LMS records without proper xAPI integration.", Damage: 20},
					},
				},
			},
		},
	}
}

func certificationTower() World {
	return World{
		ID:          5,
		Name:        "CERTIFICATION TOWER",
		Description: "Prove your mastery in the final exam",
		NPC:         "king",
		IntroText:   "You have reached the CERTIFICATION TOWER! Within awaits the CMI5 GUARDIAN. Only by answering correctly 80% of the time will you survive. Are you ready?",
		Boss: Boss{
			Name:       "CMI5 GUARDIAN",
			HP:         1000,
			XPReward:   500,
			StarReward: 10,
			Intro:      "I am the CMI5 GUARDIAN, keeper of certification! To prove your mastery, you must answer my questions. Score below 80% and you shall fall! Let the final test begin!",
			Questions:  examPool(),
		},
	}
}

// examPool is the final-exam question bank; the exam samples
// FinalExamSize questions from it without replacement.
func examPool() []Question {
	return []Question{
		{
			Text: "What file must be at the root level of every CMI5 package?",
			Choices: []Choice{
				{Text: "cmi5.xml", Correct: true},
				{Text: "manifest.xml"},
				{Text: "index.html"},
				{Text: "package.json"},
			},
		},
		{
			Text: "What is the correct format for masteryScore in cmi5.xml?",
			Choices: []Choice{
				{Text: "A decimal between 0.0 and 1.0 (e.g., 0.8 for 80%)", Correct: true},
				{Text: "A percentage (e.g., 80%)"},
				{Text: "A whole number (e.g., 80)"},
				{Text: "A letter grade (e.g., B)"},
			},
		},
		{
			Text: "Which xAPI statement must ALWAYS be sent last in a CMI5 session?",
			Choices: []Choice{
				{Text: "terminated", Correct: true},
				{Text: "completed"},
				{Text: "passed"},
				{Text: "satisfied"},
			},
		},
		{
			Text: "What does AU stand for in CMI5?",
			Choices: []Choice{
				{Text: "Assignable Unit", Correct: true},
				{Text: "Assessment Unit"},
				{Text: "Audio Unit"},
				{Text: "Automatic Upload"},
			},
		},
		{
			Text: "What is the relationship between CMI5 and xAPI?",
			Choices: []Choice{
				{Text: "CMI5 is a profile that defines how to use xAPI for LMS content", Correct: true},
				{Text: "They are two names for the same standard"},
				{Text: "xAPI replaced CMI5"},
				{Text: "CMI5 replaced xAPI"},
			},
		},
		{
			Text: "What happens if cmi5.xml is inside a subfolder in your ZIP?",
			Choices: []Choice{
				{Text: "The LMS will not find the course structure", Correct: true},
				{Text: "The course will work normally"},
				{Text: "The subfolder becomes the course root"},
				{Text: "The LMS will automatically extract it"},
			},
		},
		{
			Text: "In Kolb's Learning Cycle, which phase involves watching demonstrations or videos?",
			Choices: []Choice{
				{Text: "Concrete Experience", Correct: true},
				{Text: "Reflective Observation"},
				{Text: "Abstract Conceptualization"},
				{Text: "Active Experimentation"},
			},
		},
		{
			Text: "What is the recommended maximum length for a training video segment?",
			Choices: []Choice{
				{Text: "5-10 minutes", Correct: true},
				{Text: "30-45 minutes"},
				{Text: "1-2 hours"},
				{Text: "No limit - longer is better"},
			},
		},
		{
			Text: "Which video format is recommended for CMI5 web content?",
			Choices: []Choice{
				{Text: "MP4 with H.264 codec", Correct: true},
				{Text: "AVI"},
				{Text: "WMV"},
				{Text: "MOV"},
			},
		},
		{
			Text: "What does moveOn=\"Passed\" mean in cmi5.xml?",
			Choices: []Choice{
				{Text: "The learner must achieve the mastery score to complete the AU", Correct: true},
				{Text: "The learner can skip this content"},
				{Text: "The content will auto-advance after viewing"},
				{Text: "The AU has been disabled"},
			},
		},
		{
			Text: "A course works locally but shows a blank page in PCTE. What should you check first?",
			Choices: []Choice{
				{Text: "Browser console for JavaScript errors related to CMI5 parameters", Correct: true},
				{Text: "The color scheme of the content"},
				{Text: "The font size settings"},
				{Text: "The number of images used"},
			},
		},
		{
			Text: "What information does the LMS pass to content at launch?",
			Choices: []Choice{
				{Text: "Fetch URL, endpoint, actor, registration, and activityId", Correct: true},
				{Text: "Just the learner name"},
				{Text: "Only the course score"},
				{Text: "Nothing - content must query the LMS"},
			},
		},
		{
			Text: "Why should quiz questions be randomized?",
			Choices: []Choice{
				{Text: "To prevent memorization of answers by order", Correct: true},
				{Text: "To make the quiz load faster"},
				{Text: "Because PCTE requires it"},
				{Text: "To reduce file size"},
			},
		},
		{
			Text: "What is the purpose of the langstring element in cmi5.xml?",
			Choices: []Choice{
				{Text: "To specify the language of text content for internationalization", Correct: true},
				{Text: "To compress the text"},
				{Text: "To encrypt the content"},
				{Text: "To link to external resources"},
			},
		},
		{
			Text: "According to Kolb's model, when should practice exercises occur?",
			Choices: []Choice{
				{Text: "After experiencing, reflecting, and learning concepts", Correct: true},
				{Text: "At the very beginning"},
				{Text: "Mixed randomly throughout"},
				{Text: "Only if time permits"},
			},
		},
		{
			Text: "What does PCTE stand for?",
			Choices: []Choice{
				{Text: "Persistent Cyber Training Environment", Correct: true},
				{Text: "Personal Computer Training Education"},
				{Text: "Public Content Teaching Exchange"},
				{Text: "Private Cloud Training Enterprise"},
			},
		},
		{
			Text: "Which statement should be sent when a learner first loads CMI5 content?",
			Choices: []Choice{
				{Text: "initialized", Correct: true},
				{Text: "completed"},
				{Text: "launched"},
				{Text: "started"},
			},
		},
		{
			Text: "What is the correct way to prevent video skipping in training content?",
			Choices: []Choice{
				{Text: "Track maximum watched position and prevent seeking beyond it", Correct: true},
				{Text: "Remove all video controls"},
				{Text: "Make the video play at 0.5x speed"},
				{Text: "Add a password after the video"},
			},
		},
		{
			Text: "If upload fails with \"Invalid XML\", what should you check first?",
			Choices: []Choice{
				{Text: "That cmi5.xml is well-formed with proper tags and required elements", Correct: true},
				{Text: "That images are high resolution"},
				{Text: "That the ZIP file name is correct"},
				{Text: "That you have internet connection"},
			},
		},
		{
			Text: "What is the primary benefit of using CMI5 over just hosting files?",
			Choices: []Choice{
				{Text: "Standardized tracking, progress reporting, and completion verification", Correct: true},
				{Text: "Smaller file sizes"},
				{Text: "Better graphics quality"},
				{Text: "Automatic translation"},
			},
		},
	}
}
